package ledgrid

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestLoadImageExact(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 7, A: 255})
		}
	}
	path := writePNG(t, img)

	g := New()
	frame, err := g.LoadImage(path, true)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if len(frame) != Size {
		t.Fatalf("frame length = %d, want %d", len(frame), Size)
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := img.RGBAAt(x, y)
			got, _ := g.GetPixel(x, y)
			if got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLoadImageScaled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		switch i % 4 {
		case 1:
			img.Pix[i] = 255 // solid green
		case 3:
			img.Pix[i] = 255
		}
	}
	path := writePNG(t, img)

	g := New()
	if _, err := g.LoadImage(path, true); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	for i, c := range g.GetPixels() {
		if c != Green {
			t.Fatalf("pixel %d = %v, want green after downscale", i, c)
		}
	}
}

func TestLoadImageNoRedraw(t *testing.T) {
	path := writePNG(t, image.NewRGBA(image.Rect(0, 0, Width, Height)))

	g := New()
	if err := g.Clear(Yellow); err != nil {
		t.Fatal(err)
	}
	frame, err := g.LoadImage(path, false)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if frame[0] != Black {
		t.Errorf("frame[0] = %v, want black", frame[0])
	}
	if c, _ := g.GetPixel(0, 0); c != Yellow {
		t.Error("LoadImage with redraw=false must not touch the grid")
	}
}

func TestLoadImageMissing(t *testing.T) {
	g := New()
	if _, err := g.LoadImage(filepath.Join(t.TempDir(), "nope.png"), true); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadImageSVG(t *testing.T) {
	const svg = `<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8">` +
		`<rect x="0" y="0" width="8" height="8" fill="#ff0000"/></svg>`
	path := filepath.Join(t.TempDir(), "test.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	if _, err := g.LoadImage(path, true); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	c, _ := g.GetPixel(3, 3)
	if c.R < 200 || c.G > 50 || c.B > 50 {
		t.Errorf("centre pixel = %v, want solid red", c)
	}
}
