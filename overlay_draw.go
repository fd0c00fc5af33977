package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/spatial"
)

// drawPortal zooms the about page's monitor over everything while a
// cinematic handoff is in flight, then fades it to reveal the destination.
func (g *Game) drawPortal(screen *ebiten.Image) {
	if !g.state.Overlay || g.cfg.ReducedMotion {
		return
	}
	o := spatial.PortalOverlay(g.now-g.overlayStart, g.cfg.Timings)
	if !o.Visible || o.Alpha <= 0 {
		return
	}

	w, h := size(screen)
	if g.portal == nil || g.portal.Bounds().Dx() != w || g.portal.Bounds().Dy() != h {
		if g.portal != nil {
			g.portal.Deallocate()
		}
		g.portal = ebiten.NewImage(w, h)
	}
	g.portal.Clear()
	g.drawSparkles(g.portal, page.About)
	g.drawAbout(g.portal)

	// Cover the swap underneath until the unveil.
	fillRect(screen, rect{0, 0, float64(w), float64(h)}, withAlpha(color.RGBA{0, 0, 0, 255}, o.Alpha*0.9))

	mx, my := monitorRect(w, h).center()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-mx, -my)
	op.GeoM.Scale(o.Scale, o.Scale)
	op.GeoM.Translate(mx, my)
	op.ColorScale.ScaleAlpha(float32(o.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.portal, op)
}
