package badge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rook-computer/badgemaker/internal/fonts"
	"github.com/rook-computer/badgemaker/internal/render"
)

// DefaultOutput is where the badge is written unless overridden.
const DefaultOutput = "assets/iap-lifetime-1024.png"

var ErrUnknownPreset = errors.New("badge: unknown preset")

// Line is one horizontally centred line of text. Y is the top of the
// text's ascender line.
type Line struct {
	Text  string
	Size  float64
	Y     int
	Color render.RGB
}

// Frame is an outline inset Margin pixels from the canvas edges and
// drawn Width pixels inward.
type Frame struct {
	Margin int
	Width  int
	Color  render.RGB
}

// Preset is a complete, fixed badge layout.
type Preset struct {
	Name       string
	Palette    render.Palette
	Glow       render.Glow
	Lines      []Line
	Frames     []Frame
	Candidates []fonts.Source
}

// Sizes returns the font sizes the preset's lines need.
func (p Preset) Sizes() []float64 {
	sizes := make([]float64, 0, len(p.Lines))
	for _, l := range p.Lines {
		sizes = append(sizes, l.Size)
	}
	return sizes
}

// Large is the framed layout with the softer, tighter glow.
func Large() Preset {
	pal := render.DefaultPalette()
	return Preset{
		Name:    "large",
		Palette: pal,
		Glow:    render.Glow{Radius: 600, Step: 10, Peak: 60, Background: pal.Background, Accent: pal.Accent},
		Lines: []Line{
			{Text: "GoFitAI", Size: 80, Y: 100, Color: pal.Accent},
			{Text: "LIFETIME", Size: 180, Y: 280, Color: pal.Text},
			{Text: "PREMIUM", Size: 160, Y: 460, Color: pal.Accent},
			{Text: "$149.99", Size: 110, Y: 700, Color: pal.Text},
			{Text: "ONE-TIME • OWN FOREVER", Size: 55, Y: 840, Color: pal.Muted},
		},
		Frames: []Frame{
			{Margin: 30, Width: 15, Color: pal.Accent},
			{Margin: 60, Width: 3, Color: pal.FrameInner},
		},
		Candidates: fonts.SystemCandidates,
	}
}

// NoFrame is the frameless layout with larger type and a wider,
// brighter glow.
func NoFrame() Preset {
	pal := render.DefaultPalette()
	return Preset{
		Name:    "no-frame",
		Palette: pal,
		Glow:    render.Glow{Radius: 650, Step: 10, Peak: 80, Background: pal.Background, Accent: pal.Accent},
		Lines: []Line{
			{Text: "GoFitAI", Size: 100, Y: 70, Color: pal.Accent},
			{Text: "LIFETIME", Size: 240, Y: 230, Color: pal.Text},
			{Text: "PREMIUM", Size: 220, Y: 440, Color: pal.Accent},
			{Text: "$149.99", Size: 150, Y: 710, Color: pal.Text},
			{Text: "ONE-TIME PAYMENT", Size: 85, Y: 880, Color: pal.Muted},
		},
		Candidates: fonts.SystemCandidates[:2],
	}
}

var presets = map[string]func() Preset{
	"large":    Large,
	"no-frame": NoFrame,
}

// Lookup returns the named preset.
func Lookup(name string) (Preset, error) {
	build, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, Names())
	}
	return build(), nil
}

// Names lists the available presets.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
