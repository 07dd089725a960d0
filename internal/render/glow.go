package render

// Glow paints a soft radial highlight as a stack of concentric filled
// circles, each tinted between Background and Accent.
type Glow struct {
	Radius     int // outermost ring
	Step       int // radius decrement between rings
	Peak       int // opacity the centre approaches, out of 255
	Background RGB
	Accent     RGB
}

// Alpha returns the synthetic opacity of the ring at radius r,
// truncated toward zero. It is 0 at r == Radius and grows towards Peak.
func (g Glow) Alpha(r int) int {
	if g.Radius <= 0 {
		return 0
	}
	a := int(float64(g.Peak) * (1 - float64(r)/float64(g.Radius)))
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return a
}

// Blend returns the interpolation weight for the ring at radius r.
func (g Glow) Blend(r int) float64 {
	f := float64(g.Alpha(r)) / 255
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// RingColor returns the fill colour of the ring at radius r.
func (g Glow) RingColor(r int) RGB {
	return g.Background.Lerp(g.Accent, g.Blend(r))
}

// Radii lists ring radii largest first. Non-positive Radius or Step
// yields no rings.
func (g Glow) Radii() []int {
	if g.Radius <= 0 || g.Step <= 0 {
		return nil
	}
	radii := make([]int, 0, g.Radius/g.Step+1)
	for r := g.Radius; r > 0; r -= g.Step {
		radii = append(radii, r)
	}
	return radii
}

// Draw paints the rings centred on (cx, cy). Larger, fainter rings go
// down first so the saturated centre stays on top.
func (g Glow) Draw(d Drawer, cx, cy int) {
	for _, r := range g.Radii() {
		d.FillCircle(cx, cy, r, g.RingColor(r))
	}
}
