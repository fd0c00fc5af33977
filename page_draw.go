package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/parallax"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/transition"
)

// hidden is where a page rests while it is not shown: a scale about the
// screen centre and a vertical shift as a fraction of the screen height.
type hidden struct {
	scale float64
	shift float64
}

// hiddenStyles are indexed by direction: forward pages leave with the
// first value, backward pages with the second.
var hiddenStyles = map[page.Page][2]hidden{
	page.About:    {{scale: 1.1}, {scale: 0.9}},
	page.Passions: {{scale: 1, shift: -1}, {scale: 1, shift: 1}},
	page.Projects: {{scale: 1, shift: -0.2}, {scale: 1, shift: 0.2}},
	page.Stack:    {{scale: 1.5}, {scale: 0.5}},
}

// placement is how a page layer is composited this frame.
type placement struct {
	scale float64
	x, y  float64
	alpha float64
}

// place combines the page's own show/hide easing with the spatial motion of
// the running transition.
func (g *Game) place(p page.Page, h int) placement {
	props := transition.PropsFor(g.state, p)
	pres := g.presence[p]

	style := hiddenStyles[p][1]
	if props.Direction == transition.Forward {
		style = hiddenStyles[p][0]
	}
	hide := 1 - pres
	pl := placement{
		scale: 1 + (style.scale-1)*hide,
		y:     style.shift * hide * float64(h),
		alpha: pres,
	}

	if !g.animator.Running() {
		return pl
	}
	rt := g.animator.Runtime()
	d := g.animator.Descriptor()
	switch p {
	case d.From:
		pl.scale *= 1 + (d.Exit.Scale-1)*rt.Progress
		pl.x += rt.Content.X
		pl.y += rt.Content.Y
	case d.To:
		if d.ContentScale.From <= d.ContentScale.To {
			pl.scale *= rt.Content.Scale
		}
	}

	fg := parallax.Compose(rt, g.cfg.Depth, g.state.Direction == transition.Forward).Foreground
	pl.x += fg.X
	pl.y += fg.Y
	return pl
}

// layer returns the offscreen image for p, sized to the screen.
func (g *Game) layer(p page.Page, w, h int) *ebiten.Image {
	img := g.layers[p]
	if img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		img.Clear()
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	g.layers[p] = img
	return img
}

// drawPages composites every visible page. The current page goes last so it
// sits above anything still fading out.
func (g *Game) drawPages(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	order := make([]page.Page, 0, page.Count)
	for _, p := range page.All() {
		if p != g.state.Current {
			order = append(order, p)
		}
	}
	order = append(order, g.state.Current)

	for _, p := range order {
		pl := g.place(p, h)
		if pl.alpha <= 0.01 {
			continue
		}
		img := g.layer(p, w, h)
		g.drawScene(img, p)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(pl.scale, pl.scale)
		op.GeoM.Translate(float64(w)/2+pl.x, float64(h)/2+pl.y)
		op.ColorScale.ScaleAlpha(float32(pl.alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawScene(dst *ebiten.Image, p page.Page) {
	g.drawSparkles(dst, p)
	switch p {
	case page.About:
		g.drawAbout(dst)
	case page.Passions:
		g.drawPassions(dst)
	case page.Projects:
		g.drawProjects(dst)
	case page.Stack:
		g.drawStack(dst)
	}
}

var (
	white     = color.RGBA{255, 255, 255, 255}
	ink       = color.RGBA{18, 20, 32, 255}
	muted     = color.RGBA{190, 196, 214, 255}
	orange    = color.RGBA{255, 149, 72, 255}
	blue      = color.RGBA{86, 156, 255, 255}
	panel     = color.RGBA{14, 16, 28, 255}
	panelEdge = color.RGBA{255, 255, 255, 60}
)

// twinkle is the sparkle pulse. Reduced motion freezes it half lit.
func (g *Game) twinkle(a float64) float64 {
	if g.cfg.ReducedMotion {
		return 0.5
	}
	return a
}

// bob is the vertical float of pins and badges.
func (g *Game) bob(phase float64) float64 {
	if g.cfg.ReducedMotion || g.cfg.Timings.FloatDuration <= 0 {
		return 0
	}
	return 4 * sinTurn(g.now/g.cfg.Timings.FloatDuration+phase)
}
