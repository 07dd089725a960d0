package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/rook-computer/badgemaker/internal/render/layout"
	"golang.org/x/image/font"
)

// Canvas is a Drawer backed by an in-memory gg context.
type Canvas struct {
	dc         *gg.Context
	background RGB
}

// NewCanvas returns a width×height canvas filled with background.
func NewCanvas(width, height int, background RGB) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), background: background}
	c.FillBackground()
	return c
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) FillBackground() {
	c.dc.SetColor(c.background.RGBA())
	c.dc.Clear()
}

func (c *Canvas) FillCircle(cx, cy, r int, col RGB) {
	if r <= 0 {
		return
	}
	// Pixel (x,y) covers [x,x+1); the inclusive box spans 2r+1 pixels.
	c.dc.DrawCircle(float64(cx)+0.5, float64(cy)+0.5, float64(r)+0.5)
	c.dc.SetColor(col.RGBA())
	c.dc.Fill()
}

func (c *Canvas) FillFrame(rect image.Rectangle, width int, col RGB) {
	outer := layout.Normalize(rect)
	if width <= 0 || outer.Empty() {
		return
	}
	inner := layout.Inset(outer, width)
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.SetFillRule(gg.FillRuleEvenOdd)
	c.dc.DrawRectangle(float64(outer.Min.X), float64(outer.Min.Y), float64(outer.Dx()), float64(outer.Dy()))
	if inner.Dx() > 0 && inner.Dy() > 0 {
		c.dc.DrawRectangle(float64(inner.Min.X), float64(inner.Min.Y), float64(inner.Dx()), float64(inner.Dy()))
	}
	c.dc.SetColor(col.RGBA())
	c.dc.Fill()
}

func (c *Canvas) MeasureText(text string, face font.Face) TextMetrics {
	if face == nil {
		return TextMetrics{}
	}
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)
	return TextMetrics{
		Width:   float64(advance) / 64,
		Height:  metrics.Height.Ceil(),
		Ascent:  metrics.Ascent.Ceil(),
		Descent: metrics.Descent.Ceil(),
	}
}

// DrawText draws text with its top-left (ascender line) at (x, y).
func (c *Canvas) DrawText(text string, x, y int, face font.Face, col RGB) TextMetrics {
	if face == nil || text == "" {
		return TextMetrics{}
	}
	m := c.MeasureText(text, face)
	c.dc.SetFontFace(face)
	c.dc.SetColor(col.RGBA())
	c.dc.DrawString(text, float64(x), float64(y+m.Ascent))
	return m
}

// Image returns the canvas pixels. The result aliases the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// SavePNG writes the canvas to path, creating parent directories and
// replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.dc.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
