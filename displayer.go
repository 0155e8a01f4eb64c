package ledgrid

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer returns a drivers.Displayer view of the grid so that code
// written against the tinygo display interface (tinyfont and friends) can
// draw on the emulator directly. Writes outside the grid are silently
// dropped, which is what that interface's callers expect.
func (g *Grid) Displayer() drivers.Displayer {
	return gridDisplayer{g}
}

type gridDisplayer struct {
	g *Grid
}

func (d gridDisplayer) Size() (x, y int16) {
	return Width, Height
}

func (d gridDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	_ = d.g.SetPixel(int(x), int(y), c)
}

func (d gridDisplayer) Display() error {
	// The window re-reads the frame continuously; nothing to flush.
	return nil
}
