// Package ledgrid emulates an 8x8 RGB LED matrix of the kind found on the
// Raspberry Pi Sense HAT and similar boards. The grid itself is a plain
// in-memory frame that can be driven headless (handy for tests); the window
// package renders it on screen.
//
// Method names and semantics follow the hardware SDK: the origin is the top
// left corner, x grows to the right, y grows downwards.
package ledgrid

import (
	"fmt"
	"image/color"
	"sync"
)

// Grid dimensions. These never change; the emulated part is always 8x8.
const (
	Width  = 8
	Height = 8
	Size   = Width * Height
)

// Grid is the emulated LED matrix. The zero value is not usable; call New.
//
// The frame is guarded by a mutex because the window's render loop reads it
// from the main goroutine while the application mutates it from another.
type Grid struct {
	mu       sync.Mutex
	pixels   [Size]color.RGBA
	rotation int
}

// New returns a cleared grid with rotation 0.
func New() *Grid {
	g := &Grid{}
	for i := range g.pixels {
		g.pixels[i] = Off
	}
	return g
}

func checkBounds(x, y int) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return nil
}

// SetPixel sets the pixel at (x, y). Top left is (0, 0), bottom right is
// (7, 7). The alpha channel is ignored; LEDs have no transparency.
func (g *Grid) SetPixel(x, y int, c color.RGBA) error {
	if err := checkBounds(x, y); err != nil {
		return err
	}
	c.A = 0xFF
	g.mu.Lock()
	g.pixels[y*Width+x] = c
	g.mu.Unlock()
	return nil
}

// GetPixel returns the pixel at (x, y).
func (g *Grid) GetPixel(x, y int) (color.RGBA, error) {
	if err := checkBounds(x, y); err != nil {
		return color.RGBA{}, err
	}
	g.mu.Lock()
	c := g.pixels[y*Width+x]
	g.mu.Unlock()
	return c, nil
}

// SetPixels replaces the whole frame. The slice must hold exactly 64 pixels
// in row-major order.
func (g *Grid) SetPixels(pixels []color.RGBA) error {
	if len(pixels) != Size {
		return fmt.Errorf("pixel lists must have %d elements, got %d", Size, len(pixels))
	}
	g.mu.Lock()
	for i, c := range pixels {
		c.A = 0xFF
		g.pixels[i] = c
	}
	g.mu.Unlock()
	return nil
}

// GetPixels returns a copy of the frame in row-major order.
func (g *Grid) GetPixels() []color.RGBA {
	out := make([]color.RGBA, Size)
	g.mu.Lock()
	copy(out, g.pixels[:])
	g.mu.Unlock()
	return out
}

// Clear fills the grid with a single colour, default black/off.
// It accepts zero or one colour argument.
func (g *Grid) Clear(colour ...color.RGBA) error {
	c := Off
	switch len(colour) {
	case 0:
	case 1:
		c = colour[0]
	default:
		return fmt.Errorf("clear takes at most one colour, got %d", len(colour))
	}
	c.A = 0xFF
	g.mu.Lock()
	for i := range g.pixels {
		g.pixels[i] = c
	}
	g.mu.Unlock()
	return nil
}

// Rotation returns the current viewing rotation in degrees.
func (g *Grid) Rotation() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

// SetRotation sets the viewing rotation: 0, 90, 180 or 270 degrees, where 0
// matches the board mounted with its HDMI port facing down. Rotation only
// affects how the frame is presented; GetPixel and GetPixels always return
// the logical contents. The redraw flag exists for SDK compatibility, the
// window re-reads the frame continuously.
func (g *Grid) SetRotation(rotation int, redraw bool) error {
	switch rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("rotation must be 0, 90, 180 or 270 degrees, got %d", rotation)
	}
	g.mu.Lock()
	g.rotation = rotation
	g.mu.Unlock()
	return nil
}

// FlipH returns the frame mirrored left-to-right. When redraw is true the
// mirrored frame also replaces the current one.
func (g *Grid) FlipH(redraw bool) []color.RGBA {
	g.mu.Lock()
	flipped := make([]color.RGBA, Size)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			flipped[y*Width+x] = g.pixels[y*Width+(Width-1-x)]
		}
	}
	if redraw {
		copy(g.pixels[:], flipped)
	}
	g.mu.Unlock()
	return flipped
}

// FlipV returns the frame mirrored top-to-bottom. When redraw is true the
// mirrored frame also replaces the current one.
func (g *Grid) FlipV(redraw bool) []color.RGBA {
	g.mu.Lock()
	flipped := make([]color.RGBA, Size)
	for y := 0; y < Height; y++ {
		copy(flipped[y*Width:(y+1)*Width], g.pixels[(Height-1-y)*Width:(Height-y)*Width])
	}
	if redraw {
		copy(g.pixels[:], flipped)
	}
	g.mu.Unlock()
	return flipped
}

// Snapshot returns the frame as presented under the current rotation, in
// display order. The render loop calls this once per frame.
func (g *Grid) Snapshot() [Size]color.RGBA {
	var out [Size]color.RGBA
	g.mu.Lock()
	rot := g.rotation
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			dx, dy := displayPos(rot, x, y)
			out[dy*Width+dx] = g.pixels[y*Width+x]
		}
	}
	g.mu.Unlock()
	return out
}

// displayPos maps a logical coordinate to its on-screen position for the
// given rotation.
func displayPos(rotation, x, y int) (int, int) {
	switch rotation {
	case 90:
		return Width - 1 - y, x
	case 180:
		return Width - 1 - x, Height - 1 - y
	case 270:
		return y, Height - 1 - x
	default:
		return x, y
	}
}
