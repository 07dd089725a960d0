package render

import "image/color"

// Logical canvas size of the badge.
const (
	CanvasWidth  = 1024
	CanvasHeight = 1024
)

// RGB is an opaque colour. The badge has no transparency, so any
// "alpha" is blended into the channels before drawing.
type RGB struct {
	R, G, B uint8
}

// RGBA returns c as a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

// Lerp interpolates each channel from c towards to by f in [0,1].
// Channels are truncated, not rounded.
func (c RGB) Lerp(to RGB, f float64) RGB {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return RGB{
		R: lerpChannel(c.R, to.R, f),
		G: lerpChannel(c.G, to.G, f),
		B: lerpChannel(c.B, to.B, f),
	}
}

func lerpChannel(from, to uint8, f float64) uint8 {
	// Explicit conversions keep the products from being fused, so output
	// is byte-identical across architectures.
	v := float64(float64(from)*(1-f)) + float64(float64(to)*f)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Palette holds the badge colours. It is passed around explicitly so
// renders never depend on package state.
type Palette struct {
	Background RGB
	Accent     RGB // #ff6b35
	Text       RGB
	Muted      RGB
	FrameInner RGB
}

// DefaultPalette is the brand palette used by every preset.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB{R: 5, G: 5, B: 7},
		Accent:     RGB{R: 255, G: 107, B: 53},
		Text:       RGB{R: 255, G: 255, B: 255},
		Muted:      RGB{R: 200, G: 200, B: 200},
		FrameInner: RGB{R: 60, G: 60, B: 60},
	}
}
