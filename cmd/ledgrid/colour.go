package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/zeth/ledgrid"
)

// Colour is a flag type accepting either a named colour or an "r,g,b"
// triple of 0-255 values.
type Colour color.RGBA

var namedColours = map[string]color.RGBA{
	"red":    ledgrid.Red,
	"blue":   ledgrid.Blue,
	"green":  ledgrid.Green,
	"purple": ledgrid.Purple,
	"pink":   ledgrid.Pink,
	"yellow": ledgrid.Yellow,
	"orange": ledgrid.Orange,
	"white":  ledgrid.White,
	"cyan":   ledgrid.Cyan,
	"black":  ledgrid.Black,
	"off":    ledgrid.Off,
}

func (c *Colour) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(strings.ToLower(string(text)))
	if named, ok := namedColours[s]; ok {
		*c = Colour(named)
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("colour must be a name or r,g,b triple, got %q", string(text))
	}
	var channels [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return fmt.Errorf("colour channel %q must be an integer between 0 and 255", p)
		}
		channels[i] = uint8(v)
	}
	*c = Colour{R: channels[0], G: channels[1], B: channels[2], A: 255}
	return nil
}

func (c Colour) RGBA() color.RGBA {
	return color.RGBA(c)
}
