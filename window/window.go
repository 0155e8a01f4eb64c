// Package window renders a ledgrid.Grid in a desktop window.
//
// The render loop owns the calling goroutine (Run must be called from main),
// while the application program runs alongside it and mutates the grid; each
// frame the window draws a snapshot of the current state.
package window

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/sync/errgroup"

	"github.com/zeth/ledgrid"
)

// LED geometry of the reference emulator: 375x375 canvas, radius-20 LEDs on
// a 45 pixel pitch, circuit-board green background.
const (
	canvasSize = 375
	ledRadius  = 20
	ledPitch   = 2*ledRadius + 5
	marginX    = 10
	marginY    = 10
)

var boardGreen = color.RGBA{0, 51, 25, 255}

// Config holds the window options.
type Config struct {
	// Title of the window; "LED Grid" when empty.
	Title string
	// Scale multiplies the window size; minimum 1.
	Scale int
	// BlackIsColour renders black pixels as solid black LEDs instead of
	// unlit ones.
	BlackIsColour bool
}

// Run opens the window and executes program against a fresh grid. It blocks
// until both the window and the program have finished and must be called
// from the main goroutine.
//
// The program's context is cancelled when the window closes; the window
// closes when the program returns. Run returns the program's error, if any.
func Run(cfg Config, program func(ctx context.Context, g *ledgrid.Grid) error) error {
	title := cfg.Title
	if title == "" {
		title = "LED Grid"
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}

	grid := ledgrid.New()
	game := &game{grid: grid, blackIsColour: cfg.BlackIsColour, done: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var eg errgroup.Group
	if program != nil {
		eg.Go(func() error {
			defer close(game.done)
			return program(ctx, grid)
		})
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(canvasSize*scale, canvasSize*scale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(game)
	cancel()
	perr := eg.Wait()
	slog.Debug("window closed")
	if err != nil {
		return err
	}
	if perr != nil && !errors.Is(perr, context.Canceled) {
		return perr
	}
	return nil
}

type game struct {
	grid          *ledgrid.Grid
	blackIsColour bool
	done          chan struct{}
}

func (g *game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(boardGreen)

	snap := g.grid.Snapshot()
	for y := 0; y < ledgrid.Height; y++ {
		for x := 0; x < ledgrid.Width; x++ {
			g.drawLED(screen, x, y, snap[y*ledgrid.Width+x])
		}
	}
}

func (g *game) drawLED(screen *ebiten.Image, x, y int, c color.RGBA) {
	cx := float32(x*ledPitch + ledRadius + marginX)
	cy := float32(y*ledPitch + ledRadius + marginY)

	lit := g.blackIsColour || c != ledgrid.Off
	if lit {
		vector.DrawFilledCircle(screen, cx, cy, ledRadius, c, true)
		vector.DrawFilledRect(screen, cx-ledRadius, cy-ledRadius, 2*ledRadius, 2*ledRadius, c, false)
		return
	}
	// An unlit LED is drawn as a thin white outline.
	vector.StrokeCircle(screen, cx, cy, ledRadius, 1, ledgrid.White, true)
	vector.StrokeRect(screen, cx-ledRadius, cy-ledRadius, 2*ledRadius, 2*ledRadius, 1, ledgrid.White, false)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasSize, canvasSize
}
