package render

import (
	"image"

	"golang.org/x/image/font"
)

// Drawer is the set of primitives a badge composition draws with,
// without exposing the underlying graphics context.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground()

	// FillCircle fills the disc whose inclusive bounding box is
	// [cx-r, cy-r, cx+r, cy+r].
	FillCircle(cx, cy, r int, c RGB)

	// FillFrame fills the band between rect and rect inset by width,
	// i.e. an outline drawn inward from rect's edges.
	FillFrame(rect image.Rectangle, width int, c RGB)

	// Generic text primitives.
	MeasureText(text string, face font.Face) TextMetrics
	DrawText(text string, x, y int, face font.Face, c RGB) TextMetrics
}

// TextMetrics describes rendered text.
// Width is the advance width, kept fractional so callers decide how to
// round when positioning.
type TextMetrics struct {
	Width   float64
	Height  int
	Ascent  int
	Descent int
}
