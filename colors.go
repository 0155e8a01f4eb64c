package ledgrid

import "image/color"

// Some friendly colours, matching the hardware SDK's examples.
var (
	Red    = color.RGBA{255, 0, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Purple = color.RGBA{102, 0, 204, 255}
	Pink   = color.RGBA{255, 0, 255, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Orange = color.RGBA{255, 128, 0, 255}
	White  = color.RGBA{255, 255, 255, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}

	// Off is what a dark LED holds; it is the same value as Black.
	Off = Black
)
