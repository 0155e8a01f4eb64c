package ledgrid

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"sync"
	"time"

	_ "embed"
)

// The glyph sheet is an 8x640 PNG: each character occupies five consecutive
// 8-pixel rows, i.e. the 5x8 glyphs are stored rotated right through 90
// degrees. Decoding un-rotates them into per-character column masks.
//
//go:embed assets/text.png
var textSheetPNG []byte

// glyphChars lists the supported characters in sheet order.
const glyphChars = " +-*/!\"#$><0123456789.=)(ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz?,;:|@%[&_']\\~"

const (
	glyphWidth      = 5
	messageFallback = '?'
)

// glyph holds one character as five column masks, bit y set meaning the
// pixel at row y is lit.
type glyph [glyphWidth]uint8

var (
	glyphOnce sync.Once
	glyphSet  map[rune]glyph
	glyphErr  error
)

func loadGlyphs() (map[rune]glyph, error) {
	glyphOnce.Do(func() {
		img, err := png.Decode(bytes.NewReader(textSheetPNG))
		if err != nil {
			glyphErr = fmt.Errorf("decode glyph sheet: %w", err)
			return
		}
		glyphSet = make(map[rune]glyph, len(glyphChars))
		for i, ch := range glyphChars {
			var gl glyph
			for col := 0; col < glyphWidth; col++ {
				row := i*glyphWidth + col
				for y := 0; y < Height; y++ {
					r, g, b, _ := img.At(Width-1-y, row).RGBA()
					if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
						gl[col] |= 1 << y
					}
				}
			}
			glyphSet[ch] = gl
		}
	})
	return glyphSet, glyphErr
}

// charGlyph returns the glyph for ch, falling back to '?' for characters
// outside the supported set.
func charGlyph(set map[rune]glyph, ch rune) glyph {
	if gl, ok := set[ch]; ok {
		return gl
	}
	return set[messageFallback]
}

// trimGlyph drops empty columns from both sides of a glyph. A fully blank
// glyph (the space character) keeps its full width.
func trimGlyph(gl glyph) []uint8 {
	cols := gl[:]
	blank := true
	for _, c := range cols {
		if c != 0 {
			blank = false
			break
		}
	}
	if blank {
		return cols
	}
	for len(cols) > 0 && cols[0] == 0 {
		cols = cols[1:]
	}
	for len(cols) > 0 && cols[len(cols)-1] == 0 {
		cols = cols[:len(cols)-1]
	}
	return cols
}

// frameFromColumns expands eight column masks into a row-major frame.
func frameFromColumns(cols []uint8, fg, bg color.RGBA) []color.RGBA {
	frame := make([]color.RGBA, Size)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if cols[x]&(1<<y) != 0 {
				frame[y*Width+x] = fg
			} else {
				frame[y*Width+x] = bg
			}
		}
	}
	return frame
}

// ShowLetter displays a single character: one blank column, the five glyph
// columns, two blank columns.
func (g *Grid) ShowLetter(ch rune, fg, bg color.RGBA) error {
	set, err := loadGlyphs()
	if err != nil {
		return err
	}
	gl := charGlyph(set, ch)
	cols := make([]uint8, Width)
	copy(cols[1:], gl[:])
	return g.SetPixels(frameFromColumns(cols, fg, bg))
}

// ShowMessage scrolls text across the grid right-to-left, one column per
// frame, pausing speed between frames (100ms when speed is not positive).
// It blocks until the scroll completes or ctx is cancelled.
func (g *Grid) ShowMessage(ctx context.Context, text string, speed time.Duration, fg, bg color.RGBA) error {
	set, err := loadGlyphs()
	if err != nil {
		return err
	}
	if speed <= 0 {
		speed = 100 * time.Millisecond
	}

	// Eight blank columns lead in and out so the text scrolls fully across;
	// one blank column separates characters.
	cols := make([]uint8, Width, Width+2*len(text)*glyphWidth)
	for _, ch := range text {
		cols = append(cols, trimGlyph(charGlyph(set, ch))...)
		cols = append(cols, 0)
	}
	cols = append(cols, make([]uint8, Width)...)

	for i := 0; i < len(cols)-Width; i++ {
		if err := g.SetPixels(frameFromColumns(cols[i:i+Width], fg, bg)); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(speed):
		}
	}
	return nil
}
