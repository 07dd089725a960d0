package badge

import (
	"errors"
	"image"
	"testing"

	"github.com/rook-computer/badgemaker/internal/fonts"
	"github.com/rook-computer/badgemaker/internal/render"
	"golang.org/x/image/font"
)

type textCall struct {
	text string
	x, y int
}

// fakeDrawer records calls and measures every string as 200px wide.
type fakeDrawer struct {
	ops     []string
	circles []int
	texts   []textCall
	frames  []image.Rectangle
}

func (f *fakeDrawer) Size() (int, int) { return render.CanvasWidth, render.CanvasHeight }
func (f *fakeDrawer) FillBackground()  { f.ops = append(f.ops, "background") }
func (f *fakeDrawer) FillCircle(cx, cy, r int, c render.RGB) {
	f.ops = append(f.ops, "circle")
	f.circles = append(f.circles, r)
}
func (f *fakeDrawer) FillFrame(rect image.Rectangle, width int, c render.RGB) {
	f.ops = append(f.ops, "frame")
	f.frames = append(f.frames, rect)
}
func (f *fakeDrawer) MeasureText(text string, face font.Face) render.TextMetrics {
	return render.TextMetrics{Width: 200}
}
func (f *fakeDrawer) DrawText(text string, x, y int, face font.Face, c render.RGB) render.TextMetrics {
	f.ops = append(f.ops, "text")
	f.texts = append(f.texts, textCall{text: text, x: x, y: y})
	return render.TextMetrics{Width: 200}
}

func goBoldSet(t *testing.T, p Preset) fonts.Set {
	t.Helper()
	set, _, err := fonts.Loader{Candidates: []fonts.Source{fonts.GoBold}}.LoadSet(p.Sizes()...)
	if err != nil {
		t.Fatalf("load gobold: %v", err)
	}
	t.Cleanup(func() { set.Close() })
	return set
}

func TestRenderOrderAndCentering(t *testing.T) {
	p := Large()
	d := &fakeDrawer{}
	res := Render(d, p, goBoldSet(t, p))

	if d.ops[0] != "background" {
		t.Fatalf("first op = %s, want background", d.ops[0])
	}
	if d.ops[len(d.ops)-1] != "frame" {
		t.Errorf("last op = %s, want frame", d.ops[len(d.ops)-1])
	}
	if len(d.circles) != 60 || d.circles[0] != 600 || d.circles[59] != 10 {
		t.Errorf("circles = %d rings from %d, want 60 from 600 down to 10", len(d.circles), d.circles[0])
	}
	if len(d.texts) != len(p.Lines) {
		t.Fatalf("drew %d lines, want %d", len(d.texts), len(p.Lines))
	}
	for i, call := range d.texts {
		if call.x != 412 {
			t.Errorf("line %q x = %d, want 412", call.text, call.x)
		}
		if call.y != p.Lines[i].Y {
			t.Errorf("line %q y = %d, want %d", call.text, call.y, p.Lines[i].Y)
		}
	}
	if len(res.Drawn) != 5 || len(res.Skipped) != 0 {
		t.Errorf("result = %+v, want 5 drawn, none skipped", res)
	}
	want := []image.Rectangle{image.Rect(30, 30, 995, 995), image.Rect(60, 60, 965, 965)}
	for i, r := range want {
		if d.frames[i] != r {
			t.Errorf("frame %d = %v, want %v", i, d.frames[i], r)
		}
	}
}

func TestRenderSkipsLinesWithoutFont(t *testing.T) {
	p := NoFrame()
	d := &fakeDrawer{}
	res := Render(d, p, nil)

	if len(d.texts) != 0 {
		t.Errorf("drew %d lines with no fonts", len(d.texts))
	}
	if len(res.Skipped) != len(p.Lines) {
		t.Errorf("skipped %v, want all %d lines", res.Skipped, len(p.Lines))
	}
	if len(d.frames) != 0 {
		t.Errorf("no-frame preset drew %d frames", len(d.frames))
	}
	if len(d.circles) != 65 {
		t.Errorf("drew %d rings, want 65", len(d.circles))
	}
}

func TestRenderPartialFontSet(t *testing.T) {
	p := Large()
	full := goBoldSet(t, p)
	partial := fonts.Set{80: full[80]}

	res := Render(&fakeDrawer{}, p, partial)
	if len(res.Drawn) != 1 || res.Drawn[0] != "GoFitAI" {
		t.Errorf("drawn = %v, want only GoFitAI", res.Drawn)
	}
	if len(res.Skipped) != 4 {
		t.Errorf("skipped = %v, want 4 lines", res.Skipped)
	}
}

func TestRenderOnCanvas(t *testing.T) {
	p := Large()
	c := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, p.Palette.Background)
	Render(c, p, goBoldSet(t, p))
	img := c.Image()

	if got := img.RGBAAt(30, 512); got != p.Palette.Accent.RGBA() {
		t.Errorf("outer frame pixel = %v, want accent", got)
	}
	if got := img.RGBAAt(61, 512); got != p.Palette.FrameInner.RGBA() {
		t.Errorf("inner frame pixel = %v, want frame grey", got)
	}
	if got := img.RGBAAt(5, 5); got != p.Palette.Background.RGBA() {
		t.Errorf("corner pixel = %v, want background", got)
	}
	if got := img.RGBAAt(512, 650); got.R <= p.Palette.Background.R {
		t.Errorf("glow pixel = %v, want brighter than background", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, p.Name)
		}
	}
	if _, err := Lookup("huge"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Lookup(huge) error = %v, want ErrUnknownPreset", err)
	}
}
