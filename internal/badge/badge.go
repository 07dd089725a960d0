// Package badge composes the lifetime-purchase badge: background,
// centre glow, centred text lines and an optional frame.
package badge

import (
	"github.com/rook-computer/badgemaker/internal/fonts"
	"github.com/rook-computer/badgemaker/internal/render"
	"github.com/rook-computer/badgemaker/internal/render/layout"
)

// Result reports which lines were drawn and which were skipped for
// lack of a font.
type Result struct {
	Drawn   []string
	Skipped []string
}

// Render draws p onto d. Lines whose face is missing from faces are
// skipped; nothing else can fail.
func Render(d render.Drawer, p Preset, faces fonts.Set) Result {
	width, height := d.Size()
	d.FillBackground()

	centre := layout.Center(width, height)
	p.Glow.Draw(d, centre.X, centre.Y)

	var res Result
	for _, line := range p.Lines {
		face, ok := faces.Face(line.Size)
		if !ok {
			res.Skipped = append(res.Skipped, line.Text)
			continue
		}
		m := d.MeasureText(line.Text, face)
		d.DrawText(line.Text, layout.CenterX(width, m.Width), line.Y, face, line.Color)
		res.Drawn = append(res.Drawn, line.Text)
	}

	for _, f := range p.Frames {
		d.FillFrame(layout.FrameRect(width, height, f.Margin), f.Width, f.Color)
	}
	return res
}
