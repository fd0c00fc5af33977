package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/content"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/scene"
)

func sinTurn(t float64) float64 {
	return math.Sin(2 * math.Pi * t)
}

func size(img *ebiten.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func fillRect(dst *ebiten.Image, r rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), clr, true)
}

func strokeRect(dst *ebiten.Image, r rect, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), float32(width), clr, true)
}

func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func accentColor(a content.Accent) color.RGBA {
	if a == content.Blue {
		return blue
	}
	return orange
}

func (g *Game) drawSparkles(dst *ebiten.Image, p page.Page) {
	w, h := size(dst)
	for _, s := range g.sparkles[p] {
		a := g.twinkle(s.Alpha(g.now))
		if a < 0.02 {
			continue
		}
		x, y := s.X*float64(w), s.Y*float64(h)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(s.Size/2), withAlpha(white, a*0.9), true)
		if s.Size > 2.5 {
			arm := s.Size * 1.5 * a
			line(dst, x-arm, y, x+arm, y, 1, withAlpha(white, a*0.5))
			line(dst, x, y-arm, x, y+arm, 1, withAlpha(white, a*0.5))
		}
	}
}

// drawBadge draws the page heading in a pill centred on cx.
func (g *Game) drawBadge(dst *ebiten.Image, p page.Page, cx, y, alpha float64) {
	title := content.Heading(p)
	tw, th := measure(title, g.fonts.heading)
	pill := rect{cx - tw/2 - 36, y, tw + 72, th + 18}
	fillRect(dst, pill, withAlpha(color.RGBA{30, 41, 59, 255}, 0.8*alpha))
	strokeRect(dst, pill, 1, withAlpha(color.RGBA{71, 85, 105, 255}, 0.5*alpha))
	drawText(dst, title, g.fonts.heading, cx, y+9, white, alpha, alignCenter)
}

func (g *Game) drawPin(dst *ebiten.Image, x, y float64, a content.Accent, alpha float64) {
	clr := accentColor(a)
	if !g.cfg.ReducedMotion {
		phase := math.Mod(g.now/1600, 1)
		vector.StrokeCircle(dst, float32(x), float32(y), float32(pinRadius*(1.3+phase)), 2, withAlpha(clr, (1-phase)*0.6*alpha), true)
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), pinRadius, withAlpha(clr, alpha), true)
	vector.StrokeCircle(dst, float32(x), float32(y), pinRadius, 2, withAlpha(white, alpha), true)
}

// drawCard is the shared card frame: panel, accent border and title.
func (g *Game) drawCard(dst *ebiten.Image, r rect, title string, a content.Accent, alpha float64) {
	fillRect(dst, r, withAlpha(color.RGBA{15, 23, 42, 255}, 0.85*alpha))
	strokeRect(dst, r, 1, withAlpha(accentColor(a), 0.4*alpha))
	drawText(dst, title, g.fonts.title, r.x+16, r.y+12, white, alpha, alignStart)
}

func (g *Game) drawAbout(dst *ebiten.Image) {
	w, h := size(dst)
	alpha := g.ready[page.About]
	mon := monitorRect(w, h)

	// Stand and base.
	cx := mon.x + mon.w/2
	fillRect(dst, rect{cx - 8, mon.y + mon.h, 16, 28}, withAlpha(color.RGBA{60, 64, 80, 255}, alpha))
	fillRect(dst, rect{cx - mon.w*0.2, mon.y + mon.h + 28, mon.w * 0.4, 6}, withAlpha(color.RGBA{60, 64, 80, 255}, alpha))

	bezel := rect{mon.x - 8, mon.y - 8, mon.w + 16, mon.h + 16}
	fillRect(dst, bezel, withAlpha(color.RGBA{34, 36, 48, 255}, alpha))
	fillRect(dst, mon, withAlpha(panel, 0.95*alpha))
	strokeRect(dst, bezel, 1, withAlpha(panelEdge, alpha))

	pad := math.Max(10, mon.w*0.06)
	drawText(dst, content.Heading(page.About), g.fonts.heading, mon.x+pad, mon.y+pad, white, alpha, alignStart)
	_, hh := measure(content.Heading(page.About), g.fonts.heading)
	bio := wrap(content.Bio, g.fonts.body, mon.w-2*pad)
	drawText(dst, bio, g.fonts.body, mon.x+pad, mon.y+pad+hh+10, muted, alpha, alignStart)

	if !g.cfg.ReducedMotion && math.Mod(g.now, 1000) < 500 {
		_, bh := measure(bio, g.fonts.body)
		fillRect(dst, rect{mon.x + pad, mon.y + pad + hh + 16 + bh, 8, 2}, withAlpha(white, alpha))
	}
}

func (g *Game) drawHouse(dst *ebiten.Image, area rect, alpha float64) {
	clr := withAlpha(color.RGBA{148, 163, 184, 255}, 0.5*alpha)
	eave := area.y + area.h*0.35
	cx := area.x + area.w/2
	line(dst, area.x, eave, cx, area.y, 2, clr)
	line(dst, cx, area.y, area.x+area.w, eave, 2, clr)
	walls := rect{area.x + area.w*0.06, eave, area.w * 0.88, area.y + area.h - eave}
	fillRect(dst, walls, withAlpha(panel, 0.55*alpha))
	strokeRect(dst, walls, 2, clr)

	door := rect{cx - area.w*0.05, area.y + area.h*0.72, area.w * 0.1, area.h * 0.28}
	strokeRect(dst, door, 2, clr)
	for _, fx := range []float64{0.2, 0.7} {
		strokeRect(dst, rect{area.x + area.w*fx, eave + area.h*0.12, area.w * 0.1, area.h * 0.14}, 1.5, clr)
	}
}

func (g *Game) drawPassions(dst *ebiten.Image) {
	w, h := size(dst)
	alpha := g.ready[page.Passions]
	r := g.reveals[page.Passions]

	g.drawBadge(dst, page.Passions, float64(w)/2, float64(h)*0.07+g.bob(0), alpha)

	area := passionsArea(w, h)
	g.drawHouse(dst, area, alpha)

	for i, p := range content.Passions {
		if !r.PinVisible(i) {
			continue
		}
		x, y := area.at(p.Pin)
		g.drawPin(dst, x, y+g.bob(float64(i)*0.25), p.Accent, alpha)
	}
	for i, p := range content.Passions {
		if !r.PinVisible(i) || !g.ptr.shows(p.ID) {
			continue
		}
		c := passionCard(w, h, i)
		g.drawCard(dst, c, p.Title, p.Accent, alpha)
		drawText(dst, wrap(p.Description, g.fonts.body, c.w-32), g.fonts.body, c.x+16, c.y+42, muted, alpha, alignStart)
	}
}

func (g *Game) drawGlobe(dst *ebiten.Image, alpha float64) {
	w, h := size(dst)
	cx, cy, r := globe(w, h)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), withAlpha(color.RGBA{15, 32, 64, 255}, 0.9*alpha), true)

	grid := withAlpha(blue, 0.25*alpha)
	for k := -3; k <= 3; k++ {
		dy := float64(k) * r * 0.28
		half := math.Sqrt(math.Max(0, r*r-dy*dy))
		line(dst, cx-half, cy+dy, cx+half, cy+dy, 1, grid)
	}

	spin := 0.0
	if !g.cfg.ReducedMotion && g.cfg.Timings.PanDuration > 0 {
		spin = g.now / g.cfg.Timings.PanDuration
	}
	for k := 0; k < 6; k++ {
		s := math.Sin(2 * math.Pi * (float64(k)/12 + spin))
		x := cx + r*s
		half := math.Sqrt(math.Max(0, r*r-(x-cx)*(x-cx)))
		line(dst, x, cy-half, x, cy+half, 1, withAlpha(blue, 0.25*alpha*(1-math.Abs(s)*0.6)))
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), 2, withAlpha(blue, 0.6*alpha), true)
}

func (g *Game) drawProjects(dst *ebiten.Image) {
	w, h := size(dst)
	alpha := g.ready[page.Projects]
	r := g.reveals[page.Projects]

	g.drawBadge(dst, page.Projects, float64(w)/2, float64(h)*0.07, alpha)
	g.drawGlobe(dst, alpha)

	area := globeArea(w, h)
	for i, p := range content.Projects {
		if !r.PinVisible(i) {
			continue
		}
		x, y := area.at(p.Pin)
		g.drawPin(dst, x, y+g.bob(float64(i)*0.3), p.Accent, alpha)
	}
	for i, p := range content.Projects {
		if !r.PinVisible(i) || !g.ptr.shows(p.ID) {
			continue
		}
		c := projectCard(w, h, i)
		g.drawCard(dst, c, p.Name, p.Accent, alpha)
		drawText(dst, wrap(p.Description, g.fonts.body, c.w-32), g.fonts.body, c.x+16, c.y+42, muted, alpha, alignStart)

		link := linkRect(c)
		amber := color.RGBA{251, 191, 36, 255}
		label := p.LinkText + " ↗"
		lw, _ := measure(label, g.fonts.body)
		drawText(dst, label, g.fonts.body, link.x, link.y, amber, alpha, alignStart)
		if g.ptr.overLink == p.ID {
			line(dst, link.x, link.y+link.h-2, link.x+lw, link.y+link.h-2, 1, withAlpha(amber, alpha))
		}
		tech := wrap(strings.Join(p.Tech, " · "), g.fonts.small, c.w-32)
		drawText(dst, tech, g.fonts.small, c.x+16, link.y+28, withAlpha(color.RGBA{209, 213, 219, 255}, 1), alpha, alignStart)
	}
}

var ringColors = [3]color.RGBA{
	hsl(270, 0.95, 0.75), // purple
	hsl(213, 0.94, 0.68), // blue
	hsl(158, 0.64, 0.52), // emerald
}

func (g *Game) drawStack(dst *ebiten.Image) {
	w, h := size(dst)
	alpha := g.ready[page.Stack]
	o := g.orbits
	cx, cy := orbitCenter(w, h, o.Pan.X, o.Pan.Y)
	side := orbitSize(w, h) * o.Zoom

	g.drawBadge(dst, page.Stack, float64(w)/2, float64(h)*0.05, alpha)

	for i, ring := range content.Stack {
		hot := g.ptr.zone == scene.Zone(i+1)
		rr := side * ringOutline[i] / 2
		width, a := 1.0, 0.3
		if hot {
			width, a = 2, 1
		}
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(rr), float32(width), withAlpha(ringColors[i], a*alpha), true)
		la := 0.5
		if hot {
			la = 1
		}
		drawText(dst, ring.Label, g.fonts.small, cx, cy-rr-20, ringColors[i], la*alpha, alignCenter)
	}

	// Centre orb.
	orb := 28.0
	if isMobile(w) {
		orb = 20
	}
	pulse := 0.5
	if !g.cfg.ReducedMotion {
		pulse = 0.5 + 0.5*sinTurn(g.now/2000)
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(orb+16), withAlpha(color.RGBA{244, 114, 182, 255}, 0.12*pulse*alpha), true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(orb+8), withAlpha(color.RGBA{192, 132, 252, 255}, 0.25*alpha), true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(orb), withAlpha(color.RGBA{168, 85, 247, 255}, alpha), true)

	var tip string
	var tipX, tipY float64
	for i, ring := range content.Stack {
		for j, t := range ring.Items {
			x, y := g.techPos(w, h, i, j)
			rad := techRadius(w)
			if g.ptr.tech == t.Name {
				rad *= 1.5
				tip, tipX, tipY = t.Name, x, y-rad
			}
			fill, label := withAlpha(ringColors[i], 0.85*alpha), withAlpha(white, alpha)
			if t.Dark {
				fill, label = withAlpha(white, 0.9*alpha), withAlpha(ink, alpha)
			}
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(rad), fill, true)
			drawText(dst, initials(t.Name), g.fonts.small, x, y-8, label, 1, alignCenter)
		}
	}
	if tip != "" {
		tw, th := measure(tip, g.fonts.body)
		box := rect{tipX - tw/2 - 12, tipY - th - 22, tw + 24, th + 12}
		fillRect(dst, box, withAlpha(color.RGBA{30, 41, 59, 255}, 0.95*alpha))
		strokeRect(dst, box, 1, withAlpha(color.RGBA{71, 85, 105, 255}, 0.5*alpha))
		drawText(dst, tip, g.fonts.body, tipX, box.y+6, white, alpha, alignCenter)
	}

	if o.Zoom != 1 || isMobile(w) {
		msg := fmt.Sprintf("Zoom: %.0f%%", o.Zoom*100)
		if isMobile(w) {
			msg += "  • Pinch or drag to explore"
		}
		tw, th := measure(msg, g.fonts.small)
		box := rect{float64(w) - tw - 40, float64(h) - th - 36, tw + 24, th + 16}
		if isMobile(w) {
			box.y -= 56
		}
		fillRect(dst, box, withAlpha(color.RGBA{30, 41, 59, 255}, 0.9))
		strokeRect(dst, box, 1, withAlpha(color.RGBA{71, 85, 105, 255}, 0.5))
		drawText(dst, msg, g.fonts.small, box.x+12, box.y+8, white, 1, alignStart)
	}
}

// techPos is the screen position of item j on ring i.
func (g *Game) techPos(w, h, i, j int) (float64, float64) {
	o := g.orbits
	cx, cy := orbitCenter(w, h, o.Pan.X, o.Pan.Y)
	x, y := scene.Position(j, len(content.Stack[i].Items), ringRadius(i, w), o.Rotation[i])
	return cx + x*o.Zoom, cy + y*o.Zoom
}

func techRadius(w int) float64 {
	switch {
	case isMobile(w):
		return 16
	case w < 1024:
		return 20
	}
	return 24
}

// initials is the short label drawn on a tech disc.
func initials(name string) string {
	r := []rune(strings.ReplaceAll(name, ".", ""))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
