package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/content"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

var (
	navFill   = color.RGBA{15, 23, 42, 200}
	navBorder = color.RGBA{100, 116, 139, 160}
)

// drawNav draws the page buttons and contact links. They are always on top
// and never move with the page content.
func (g *Game) drawNav(screen *ebiten.Image) {
	w, h := size(screen)
	target := g.state.Current
	if g.state.Transitioning {
		target = g.state.To
	}

	rects := navRects(w, h)
	if isMobile(w) {
		first, last := rects[0], rects[len(rects)-1]
		pill := rect{first.x - 8, first.y - 6, last.x + last.w - first.x + 16, first.h + 12}
		fillRect(screen, pill, withAlpha(color.RGBA{15, 23, 42, 255}, 0.85))
		strokeRect(screen, pill, 1, navBorder)
	}
	for i, p := range page.All() {
		r := rects[i]
		hot := r.contains(g.ptr.x, g.ptr.y)
		if !isMobile(w) {
			fillRect(screen, r, navFill)
		}
		switch {
		case p == target:
			strokeRect(screen, r, 2, white)
		case hot:
			strokeRect(screen, r, 1, withAlpha(white, 0.6))
		case !isMobile(w):
			strokeRect(screen, r, 1, navBorder)
		}
		clr, a := muted, 0.8
		if p == target || hot {
			clr, a = white, 1
		}
		face := g.fonts.nav
		_, th := measure(p.Label(), face)
		drawText(screen, p.Label(), face, r.x+r.w/2, r.y+(r.h-th)/2, clr, a, alignCenter)
	}

	for i, r := range contactRects(w, h) {
		c := content.Contacts[i]
		cx, cy := r.center()
		hot := r.contains(g.ptr.x, g.ptr.y)
		fill := withAlpha(color.RGBA{15, 23, 42, 255}, 0.8)
		if hot {
			fill = withAlpha(color.RGBA{51, 65, 85, 255}, 0.95)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.w/2), fill, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r.w/2), 1, navBorder, true)
		glyph := initials(c.Label)
		_, th := measure(glyph, g.fonts.small)
		drawText(screen, glyph, g.fonts.small, cx, cy-th/2, white, 1, alignCenter)
		if hot {
			drawText(screen, c.Label, g.fonts.small, cx, r.y-20, white, 0.9, alignCenter)
		}
	}
}
