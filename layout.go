package main

import (
	"math"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/content"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/scene"
)

// mobileBreakpoint switches the nav to a bottom pill and moves the contact
// links to the top.
const mobileBreakpoint = 768

const pinRadius = 9.0

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

func (r rect) center() (float64, float64) {
	return r.x + r.w/2, r.y + r.h/2
}

// at maps a fractional point inside r to screen space.
func (r rect) at(p content.Point) (float64, float64) {
	return r.x + p.X*r.w, r.y + p.Y*r.h
}

func isMobile(w int) bool { return w < mobileBreakpoint }

// navRects are the hit boxes of the page buttons, in page order.
func navRects(w, h int) [page.Count]rect {
	var out [page.Count]rect
	if isMobile(w) {
		const bw, bh, gap = 84.0, 30.0, 6.0
		total := float64(page.Count)*bw + float64(page.Count-1)*gap
		x := (float64(w) - total) / 2
		y := float64(h) - bh - 14
		for i := range out {
			out[i] = rect{x + float64(i)*(bw+gap), y, bw, bh}
		}
		return out
	}
	const bw, bh, gap = 130.0, 38.0, 22.0
	total := float64(page.Count)*bh + float64(page.Count-1)*gap
	y := (float64(h) - total) / 2
	for i := range out {
		out[i] = rect{24, y + float64(i)*(bh+gap), bw, bh}
	}
	return out
}

// contactRects are the round contact buttons, in content.Contacts order.
func contactRects(w, h int) []rect {
	size, gap := 40.0, 12.0
	x, y := 24.0, float64(h)-size-24
	if isMobile(w) {
		size, gap = 36, 8
		x, y = 16, 16
	}
	out := make([]rect, len(content.Contacts))
	for i := range out {
		out[i] = rect{x + float64(i)*(size+gap), y, size, size}
	}
	return out
}

// monitorRect is the about page's monitor screen.
func monitorRect(w, h int) rect {
	fw, fh := float64(w), float64(h)
	if isMobile(w) {
		return rect{fw * 0.07, fh * 0.2, fw * 0.86, fh * 0.34}
	}
	mw := math.Min(fw*0.26, 360)
	return rect{fw - fw*0.18 - mw, fh * 0.18, mw, fh * 0.28}
}

// passionsArea is the house scene the passion pins sit on.
func passionsArea(w, h int) rect {
	fw, fh := float64(w), float64(h)
	aw := math.Min(fw*0.8, 1000)
	ah := math.Min(aw*0.6, fh*0.7)
	return rect{(fw - aw) / 2, fh*0.55 - ah/2, aw, ah}
}

// globe returns the centre and radius of the projects globe.
func globe(w, h int) (cx, cy, r float64) {
	fw, fh := float64(w), float64(h)
	r = math.Min(fw*0.95, 1024) / 2
	r = math.Min(r, fh*0.45)
	// The globe sinks below the bottom edge by 8% of its diameter.
	return fw / 2, fh - r*0.84, r
}

func globeArea(w, h int) rect {
	cx, cy, r := globe(w, h)
	return rect{cx - r, cy - r, 2 * r, 2 * r}
}

// orbitSize is the edge of the square the stack rings are laid out in.
func orbitSize(w, h int) float64 {
	return math.Min(math.Min(float64(w)*0.9, 800), float64(h)*0.9)
}

// ringRadius is the on-screen radius of stack ring i before zoom.
func ringRadius(i, w int) float64 {
	return scene.Radius(scene.RingRadii[i], float64(w))
}

// pinAt returns the index of the pin within pinRadius of (px, py), or -1.
func pinAt(area rect, pins []content.Point, px, py float64) int {
	for i, p := range pins {
		x, y := area.at(p)
		if math.Hypot(px-x, py-y) <= pinRadius*1.8 {
			return i
		}
	}
	return -1
}

func passionPoints() []content.Point {
	out := make([]content.Point, len(content.Passions))
	for i, p := range content.Passions {
		out[i] = p.Pin
	}
	return out
}

func projectPoints() []content.Point {
	out := make([]content.Point, len(content.Projects))
	for i, p := range content.Projects {
		out[i] = p.Pin
	}
	return out
}

const (
	passionCardW = 240.0
	passionCardH = 150.0
	projectCardW = 300.0
	projectCardH = 220.0
)

// card places a cw x ch card at the pin plus off, kept inside the screen.
func card(px, py float64, off content.Offset, cw, ch float64, w, h int) rect {
	cw = math.Min(cw, float64(w)-32)
	x := math.Max(16, math.Min(px+off.X, float64(w)-cw-16))
	y := math.Max(16, math.Min(py+off.Y, float64(h)-ch-16))
	return rect{x, y, cw, ch}
}

func passionCard(w, h, i int) rect {
	p := content.Passions[i]
	px, py := passionsArea(w, h).at(p.Pin)
	return card(px, py, p.CardOffset, passionCardW, passionCardH, w, h)
}

func projectCard(w, h, i int) rect {
	p := content.Projects[i]
	px, py := globeArea(w, h).at(p.Pin)
	return card(px, py, p.CardOffset, projectCardW, projectCardH, w, h)
}

// linkRect is the clickable link line inside a project card.
func linkRect(c rect) rect {
	return rect{c.x + 16, c.y + c.h - 64, c.w - 32, 22}
}

// orbitCenter is the stack orbit centre after panning.
func orbitCenter(w, h int, panX, panY float64) (float64, float64) {
	return float64(w)/2 + panX, float64(h)/2 + panY
}

// ringOutline is the drawn ring as a fraction of the orbit square, inner to
// outer.
var ringOutline = [3]float64{0.30, 0.55, 0.85}
