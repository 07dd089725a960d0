// Package preview shows a rendered badge on a Linux framebuffer.
package preview

import (
	"errors"
	"image"
	"image/color"
)

// ErrUnsupported is returned on platforms without framebuffer support.
var ErrUnsupported = errors.New("preview: framebuffer not supported on this platform")

// Target is the subset of a framebuffer device the blit writes to.
type Target interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Blit scales src into dst's bounds with nearest-neighbour sampling.
// Pixels are written opaque.
func Blit(dst Target, src *image.RGBA) {
	if dst == nil || src == nil {
		return
	}
	bounds := dst.Bounds()
	srcBounds := src.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()
	if dstWidth <= 0 || dstHeight <= 0 || srcWidth <= 0 || srcHeight <= 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcWidth)/dstWidth
			pixel := src.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
