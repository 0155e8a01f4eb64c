package ledgrid

import (
	"testing"

	"tinygo.org/x/tinyfont"
)

func TestDisplayerSize(t *testing.T) {
	g := New()
	x, y := g.Displayer().Size()
	if x != Width || y != Height {
		t.Errorf("Size() = (%d, %d), want (%d, %d)", x, y, Width, Height)
	}
}

func TestDisplayerSetPixel(t *testing.T) {
	g := New()
	d := g.Displayer()

	d.SetPixel(2, 3, Cyan)
	if c, _ := g.GetPixel(2, 3); c != Cyan {
		t.Errorf("GetPixel(2, 3) = %v, want cyan", c)
	}

	// Out-of-range writes are dropped, not errors.
	d.SetPixel(-1, 0, Red)
	d.SetPixel(8, 8, Red)
	if err := d.Display(); err != nil {
		t.Errorf("Display() error = %v", err)
	}
}

func TestDisplayerTinyfont(t *testing.T) {
	g := New()
	tinyfont.WriteLine(g.Displayer(), &tinyfont.TomThumb, 1, 6, "A", White)

	lit := 0
	for _, c := range g.GetPixels() {
		if c == White {
			lit++
		}
	}
	if lit == 0 {
		t.Error("tinyfont drew no pixels through the displayer")
	}
}
