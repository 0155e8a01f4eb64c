package ledgrid

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// LoadImage reads an image file onto the grid and returns the resulting
// frame. PNG, JPEG and GIF are decoded as-is; .svg files are rasterized at
// grid size. A source that is not exactly 8x8 is scaled down (or up) with
// nearest-neighbour filtering. When redraw is false the grid is left
// untouched and only the frame is returned.
func (g *Grid) LoadImage(path string, redraw bool) ([]color.RGBA, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err = rasterizeSVG(path)
	} else {
		img, err = decodeRaster(path)
	}
	if err != nil {
		return nil, err
	}

	frame := frameFromImage(img)
	if redraw {
		if err := g.SetPixels(frame); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func decodeRaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func rasterizeSVG(path string) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", filepath.Base(path), err)
	}
	icon.SetTarget(0, 0, Width, Height)

	rgba := image.NewRGBA(image.Rect(0, 0, Width, Height))
	scanner := rasterx.NewScannerGV(Width, Height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(Width, Height, scanner), 1.0)
	return rgba, nil
}

// frameFromImage converts any image to a 64-pixel frame, scaling when the
// source is not already 8x8.
func frameFromImage(img image.Image) []color.RGBA {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Dx() != Width || b.Dy() != Height {
		dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		rgba = dst
	}

	frame := make([]color.RGBA, Size)
	rb := rgba.Bounds()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := rgba.RGBAAt(rb.Min.X+x, rb.Min.Y+y)
			c.A = 0xFF
			frame[y*Width+x] = c
		}
	}
	return frame
}
