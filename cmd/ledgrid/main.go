// Command ledgrid opens the LED grid emulator window and drives it with one
// of the bundled programs.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"tinygo.org/x/tinyfont"

	"github.com/zeth/ledgrid"
	"github.com/zeth/ledgrid/internal/demo"
	"github.com/zeth/ledgrid/internal/logger"
	"github.com/zeth/ledgrid/window"
)

type Globals struct {
	Title         string `help:"Window title." default:"LED Grid"`
	Scale         int    `help:"Window scale factor." default:"1"`
	Rotation      int    `help:"Initial grid rotation in degrees." default:"0"`
	BlackIsColour bool   `help:"Render black pixels as solid black LEDs instead of unlit ones."`
}

func (g *Globals) Validate() error {
	if g.Scale < 1 {
		return fmt.Errorf("scale must be at least 1")
	}
	switch g.Rotation {
	case 0, 90, 180, 270:
		return nil
	default:
		return fmt.Errorf("rotation must be 0, 90, 180 or 270")
	}
}

// runWindow opens the window and hands a rotated grid to program.
func runWindow(g *Globals, program func(ctx context.Context, grid *ledgrid.Grid) error) error {
	cfg := window.Config{
		Title:         g.Title,
		Scale:         g.Scale,
		BlackIsColour: g.BlackIsColour,
	}
	return window.Run(cfg, func(ctx context.Context, grid *ledgrid.Grid) error {
		if err := grid.SetRotation(g.Rotation, false); err != nil {
			return err
		}
		return program(ctx, grid)
	})
}

type DemoCmd struct{}

func (c *DemoCmd) Run(g *Globals) error {
	return runWindow(g, demo.All)
}

type MessageCmd struct {
	Text       []string      `arg:"" help:"Message to scroll."`
	Speed      time.Duration `short:"s" help:"Pause between scroll steps." default:"100ms"`
	Colour     Colour        `short:"c" help:"Text colour (name or r,g,b)." default:"white"`
	Background Colour        `short:"b" help:"Background colour (name or r,g,b)." default:"black"`
}

func (c *MessageCmd) Run(g *Globals) error {
	text := strings.Join(c.Text, " ")
	return runWindow(g, func(ctx context.Context, grid *ledgrid.Grid) error {
		return grid.ShowMessage(ctx, text, c.Speed, c.Colour.RGBA(), c.Background.RGBA())
	})
}

type LetterCmd struct {
	Char       string `arg:"" help:"Single character to display."`
	Colour     Colour `short:"c" help:"Text colour (name or r,g,b)." default:"white"`
	Background Colour `short:"b" help:"Background colour (name or r,g,b)." default:"black"`
}

func (c *LetterCmd) Validate() error {
	if utf8.RuneCountInString(c.Char) != 1 {
		return fmt.Errorf("only one character may be displayed, got %q", c.Char)
	}
	return nil
}

func (c *LetterCmd) Run(g *Globals) error {
	ch, _ := utf8.DecodeRuneInString(c.Char)
	return runWindow(g, func(ctx context.Context, grid *ledgrid.Grid) error {
		if err := grid.ShowLetter(ch, c.Colour.RGBA(), c.Background.RGBA()); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})
}

type ImageCmd struct {
	Path string `arg:"" help:"Path to an image file (PNG, JPEG, GIF or SVG)."`
}

func (c *ImageCmd) Run(g *Globals) error {
	return runWindow(g, func(ctx context.Context, grid *ledgrid.Grid) error {
		if _, err := grid.LoadImage(c.Path, true); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})
}

type MarqueeCmd struct {
	Text       []string      `arg:"" help:"Text to scroll."`
	Speed      time.Duration `short:"s" help:"Pause between scroll steps." default:"80ms"`
	Colour     Colour        `short:"c" help:"Text colour (name or r,g,b)." default:"white"`
	Background Colour        `short:"b" help:"Background colour (name or r,g,b)." default:"black"`
}

// Run scrolls the text rendered with a tinyfont face through the grid's
// Displayer view, the way tinygo code would drive the real matrix.
func (c *MarqueeCmd) Run(g *Globals) error {
	text := strings.Join(c.Text, " ")
	return runWindow(g, func(ctx context.Context, grid *ledgrid.Grid) error {
		_, width := tinyfont.LineWidth(&tinyfont.TomThumb, text)
		d := grid.Displayer()
		for x := ledgrid.Width; x >= -int(width); x-- {
			if err := grid.Clear(c.Background.RGBA()); err != nil {
				return err
			}
			tinyfont.WriteLine(d, &tinyfont.TomThumb, int16(x), 6, text, c.Colour.RGBA())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.Speed):
			}
		}
		return nil
	})
}

func main() {
	logger.Setup()

	var cli struct {
		Globals

		Demo    DemoCmd    `cmd:"" default:"withargs" help:"Run the bundled example animations."`
		Message MessageCmd `cmd:"" help:"Scroll a text message across the grid."`
		Letter  LetterCmd  `cmd:"" help:"Display a single character."`
		Image   ImageCmd   `cmd:"" help:"Display an image file on the grid."`
		Marquee MarqueeCmd `cmd:"" help:"Scroll text rendered with a tinyfont face."`
	}

	ctx := kong.Parse(&cli,
		kong.Name("ledgrid"),
		kong.Description("On-screen emulator for an 8x8 RGB LED matrix."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli.Globals); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
