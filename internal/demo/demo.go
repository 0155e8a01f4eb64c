// Package demo contains the bundled example animations shown by the
// command line tool.
package demo

import (
	"context"
	"image/color"
	"log/slog"
	"time"

	"github.com/zeth/ledgrid"
)

// Raspberry is the fruit logo frame shown when the showcase starts.
var Raspberry = func() []color.RGBA {
	b, r, o := ledgrid.Blue, ledgrid.Red, ledgrid.Off
	return []color.RGBA{
		b, b, b, b, r, o, o, o,
		b, o, r, r, r, o, o, o,
		b, o, b, b, r, o, o, o,
		b, o, b, b, o, o, o, o,
		b, r, b, b, r, o, o, o,
		r, r, r, r, b, o, o, o,
		r, r, b, b, b, o, o, o,
		o, o, o, b, o, o, o, o,
	}
}()

// nextColour advances one step around the colour wheel, keeping exactly one
// channel saturated at a time.
func nextColour(c color.RGBA) color.RGBA {
	r, g, b := c.R, c.G, c.B
	switch {
	case r == 255 && g < 255 && b == 0:
		g++
	case g == 255 && r > 0 && b == 0:
		r--
	case g == 255 && b < 255 && r == 0:
		b++
	case b == 255 && g > 0 && r == 0:
		g--
	case b == 255 && r < 255 && g == 0:
		r++
	case r == 255 && b > 0 && g == 0:
		b--
	}
	return color.RGBA{r, g, b, 255}
}

// runFor calls step at the given interval until d elapses or ctx is
// cancelled. Cancellation is not an error here; the demos just stop.
func runFor(ctx context.Context, d, interval time.Duration, step func() error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.After(d)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case <-ticker.C:
			if err := step(); err != nil {
				return err
			}
		}
	}
}

// ColourCycle fills the whole grid with a colour walking around the wheel.
func ColourCycle(ctx context.Context, g *ledgrid.Grid, d time.Duration) error {
	c := ledgrid.Red
	return runFor(ctx, d, 2*time.Millisecond, func() error {
		if err := g.Clear(c); err != nil {
			return err
		}
		c = nextColour(c)
		return nil
	})
}

// rainbowSeed is the diagonal rainbow the Rainbow demo starts from.
var rainbowSeed = []color.RGBA{
	{255, 0, 0, 255}, {255, 0, 0, 255}, {255, 87, 0, 255}, {255, 196, 0, 255},
	{205, 255, 0, 255}, {95, 255, 0, 255}, {0, 255, 13, 255}, {0, 255, 122, 255},
	{255, 0, 0, 255}, {255, 96, 0, 255}, {255, 205, 0, 255}, {196, 255, 0, 255},
	{87, 255, 0, 255}, {0, 255, 22, 255}, {0, 255, 131, 255}, {0, 255, 240, 255},
	{255, 105, 0, 255}, {255, 214, 0, 255}, {187, 255, 0, 255}, {78, 255, 0, 255},
	{0, 255, 30, 255}, {0, 255, 140, 255}, {0, 255, 248, 255}, {0, 152, 255, 255},
	{255, 223, 0, 255}, {178, 255, 0, 255}, {70, 255, 0, 255}, {0, 255, 40, 255},
	{0, 255, 148, 255}, {0, 253, 255, 255}, {0, 144, 255, 255}, {0, 34, 255, 255},
	{170, 255, 0, 255}, {61, 255, 0, 255}, {0, 255, 48, 255}, {0, 255, 157, 255},
	{0, 243, 255, 255}, {0, 134, 255, 255}, {0, 26, 255, 255}, {83, 0, 255, 255},
	{52, 255, 0, 255}, {0, 255, 57, 255}, {0, 255, 166, 255}, {0, 235, 255, 255},
	{0, 126, 255, 255}, {0, 17, 255, 255}, {92, 0, 255, 255}, {201, 0, 255, 255},
	{0, 255, 66, 255}, {0, 255, 174, 255}, {0, 226, 255, 255}, {0, 117, 255, 255},
	{0, 8, 255, 255}, {100, 0, 255, 255}, {210, 0, 255, 255}, {255, 0, 192, 255},
	{0, 255, 183, 255}, {0, 217, 255, 255}, {0, 109, 255, 255}, {0, 0, 255, 255},
	{110, 0, 255, 255}, {218, 0, 255, 255}, {255, 0, 183, 255}, {255, 0, 74, 255},
}

// Rainbow scrolls a rainbow by stepping every pixel around the wheel.
func Rainbow(ctx context.Context, g *ledgrid.Grid, d time.Duration) error {
	pixels := make([]color.RGBA, len(rainbowSeed))
	copy(pixels, rainbowSeed)
	return runFor(ctx, d, 2*time.Millisecond, func() error {
		for i := range pixels {
			pixels[i] = nextColour(pixels[i])
		}
		return g.SetPixels(pixels)
	})
}

// QuestionMark shows a question mark with a distinct pixel in each corner
// and spins it through all four rotations. The previous rotation is
// restored when the demo ends.
func QuestionMark(ctx context.Context, g *ledgrid.Grid, d time.Duration) error {
	w, r := ledgrid.White, ledgrid.Red
	frame := []color.RGBA{
		w, w, w, r, r, w, w, w,
		w, w, r, w, w, r, w, w,
		w, w, w, w, w, r, w, w,
		w, w, w, w, r, w, w, w,
		w, w, w, r, w, w, w, w,
		w, w, w, r, w, w, w, w,
		w, w, w, w, w, w, w, w,
		w, w, w, r, w, w, w, w,
	}
	if err := g.SetPixels(frame); err != nil {
		return err
	}
	for _, c := range []struct {
		x, y int
		c    color.RGBA
	}{
		{0, 0, ledgrid.Red},
		{0, 7, ledgrid.Green},
		{7, 0, ledgrid.Blue},
		{7, 7, ledgrid.Pink},
	} {
		if err := g.SetPixel(c.x, c.y, c.c); err != nil {
			return err
		}
	}

	previous := g.Rotation()
	defer g.SetRotation(previous, true)

	rotations := []int{0, 90, 180, 270}
	i := 0
	return runFor(ctx, d, 300*time.Millisecond, func() error {
		if err := g.SetRotation(rotations[i], true); err != nil {
			return err
		}
		i = (i + 1) % len(rotations)
		return nil
	})
}

// All runs the original showcase: the raspberry frame, a welcome message,
// five seconds of each animation and a goodbye message.
func All(ctx context.Context, g *ledgrid.Grid) error {
	slog.Info("running showcase")
	if err := g.SetPixels(Raspberry); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return nil
	case <-time.After(2 * time.Second):
	}

	if err := g.ShowMessage(ctx, "Welcome to some examples", 50*time.Millisecond, ledgrid.Purple, ledgrid.Off); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	animations := []struct {
		name string
		run  func(context.Context, *ledgrid.Grid, time.Duration) error
	}{
		{"colour cycle", ColourCycle},
		{"rainbow", Rainbow},
		{"question mark", QuestionMark},
	}
	for _, a := range animations {
		slog.Info("running demo", "name", a.name)
		if err := a.run(ctx, g, 5*time.Second); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}

	if err := g.ShowMessage(ctx, "Thanks for watching!", 70*time.Millisecond, ledgrid.Red, ledgrid.Off); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
