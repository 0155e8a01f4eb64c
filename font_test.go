package ledgrid

import (
	"context"
	"testing"
	"time"
)

func TestGlyphSheet(t *testing.T) {
	set, err := loadGlyphs()
	if err != nil {
		t.Fatalf("loadGlyphs: %v", err)
	}

	for _, ch := range glyphChars {
		if _, ok := set[ch]; !ok {
			t.Errorf("no glyph for %q", ch)
		}
	}

	// The space is blank, everything else has at least one lit pixel.
	for _, ch := range glyphChars {
		lit := false
		for _, col := range set[ch] {
			if col != 0 {
				lit = true
				break
			}
		}
		if ch == ' ' {
			if lit {
				t.Error("space glyph should be blank")
			}
		} else if !lit {
			t.Errorf("glyph %q is blank", ch)
		}
	}
}

func TestTrimGlyph(t *testing.T) {
	tests := []struct {
		name string
		in   glyph
		want int
	}{
		{"blank keeps full width", glyph{}, glyphWidth},
		{"trims both sides", glyph{0, 0x3C, 0, 0, 0}, 1},
		{"trims trailing only", glyph{0x01, 0x02, 0, 0, 0}, 2},
		{"full width kept", glyph{1, 1, 1, 1, 1}, glyphWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(trimGlyph(tt.in)); got != tt.want {
				t.Errorf("trimGlyph() width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrameFromColumns(t *testing.T) {
	cols := make([]uint8, Width)
	cols[2] = 1<<0 | 1<<7

	frame := frameFromColumns(cols, Red, Blue)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := Blue
			if x == 2 && (y == 0 || y == 7) {
				want = Red
			}
			if got := frame[y*Width+x]; got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestShowLetterLayout(t *testing.T) {
	g := New()
	if err := g.ShowLetter('A', Red, Black); err != nil {
		t.Fatalf("ShowLetter: %v", err)
	}

	sawText := false
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c, _ := g.GetPixel(x, y)
			switch c {
			case Red:
				sawText = true
				// The glyph occupies columns 1-5 only.
				if x == 0 || x > glyphWidth {
					t.Errorf("text pixel at (%d, %d) outside the glyph columns", x, y)
				}
			case Black:
			default:
				t.Errorf("pixel (%d, %d) = %v, want text or background colour", x, y, c)
			}
		}
	}
	if !sawText {
		t.Error("ShowLetter('A') drew no text pixels")
	}
}

func TestShowLetterSpace(t *testing.T) {
	g := New()
	if err := g.ShowLetter(' ', White, Blue); err != nil {
		t.Fatalf("ShowLetter: %v", err)
	}
	for i, c := range g.GetPixels() {
		if c != Blue {
			t.Fatalf("pixel %d = %v, want background", i, c)
		}
	}
}

func TestShowLetterUnknownFallsBack(t *testing.T) {
	known := New()
	if err := known.ShowLetter('?', White, Black); err != nil {
		t.Fatal(err)
	}
	unknown := New()
	if err := unknown.ShowLetter('é', White, Black); err != nil {
		t.Fatal(err)
	}
	got, want := unknown.GetPixels(), known.GetPixels()
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("unknown character should render as '?', pixel %d differs", i)
		}
	}
}

func TestShowMessageScrollsOff(t *testing.T) {
	g := New()
	ctx := context.Background()
	if err := g.ShowMessage(ctx, "Hi", time.Nanosecond, Green, Black); err != nil {
		t.Fatalf("ShowMessage: %v", err)
	}
	// After the scroll completes only the trailing padding is visible.
	for i, c := range g.GetPixels() {
		if c != Black {
			t.Fatalf("pixel %d = %v after scroll, want background", i, c)
		}
	}
}

func TestShowMessageCancelled(t *testing.T) {
	g := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.ShowMessage(ctx, "never shown", time.Hour, White, Black); err != context.Canceled {
		t.Fatalf("ShowMessage with cancelled context = %v, want context.Canceled", err)
	}
}
