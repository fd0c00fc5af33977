package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/content"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/input"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/scene"
)

// tapSlop is how far a touch may travel and still count as a tap.
const tapSlop = 10.0

type pointer struct {
	x, y float64

	hovered  string // pin or card under the cursor
	selected string // card opened by a click or tap
	overLink string // project whose link is under the cursor
	tech     string
	zone     scene.Zone
	// overOrbit is set while the cursor is inside the stack orbit square.
	overOrbit bool

	touching       bool
	touchID        ebiten.TouchID
	touchX, touchY float64

	dragging     bool
	dragged      bool
	dragX, dragY float64
}

// shows reports whether the card for id is open.
func (p *pointer) shows(id string) bool {
	return id != "" && (p.selected == id || p.hovered == id)
}

var navKeys = []struct {
	key ebiten.Key
	nav input.Key
}{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyPageUp, input.KeyPageUp},
	{ebiten.KeyPageDown, input.KeyPageDown},
}

func (g *Game) handleInput() {
	w, h := g.sw, g.sh
	mx, my := ebiten.CursorPosition()
	g.ptr.x, g.ptr.y = float64(mx), float64(my)
	g.hover(w, h)

	for _, k := range navKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.router.Key(k.nav)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ptr.selected = ""
		g.orbits.Reset()
	}

	g.handleWheel()
	g.handleTouch(w, h)
	g.handleMouse(w, h)
}

func (g *Game) handleWheel() {
	_, yoff := ebiten.Wheel()
	if yoff == 0 {
		return
	}
	deltaY := -yoff * g.cfg.WheelPixelsPerNotch
	if g.onStack() && (g.ptr.overOrbit || g.ptr.tech != "") {
		g.orbits.ZoomBy(deltaY)
		return
	}
	g.router.Wheel(g.now, deltaY)
}

func (g *Game) handleTouch(w, h int) {
	if !g.ptr.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			fx, fy := float64(x), float64(y)
			g.ptr.touching, g.ptr.touchID = true, id
			g.ptr.touchX, g.ptr.touchY = fx, fy
			g.router.TouchStart(fx, fy)
			if g.onStack() {
				g.startDrag(fx, fy)
			}
			break
		}
		return
	}

	id := g.ptr.touchID
	if !inpututil.IsTouchJustReleased(id) {
		x, y := ebiten.TouchPosition(id)
		g.moveDrag(float64(x), float64(y))
		return
	}

	x, y := inpututil.TouchPositionInPreviousTick(id)
	fx, fy := float64(x), float64(y)
	g.ptr.touching = false
	exploring := g.ptr.dragged && g.orbits.Zoom > 1
	g.endDrag()

	switch {
	case math.Hypot(fx-g.ptr.touchX, fy-g.ptr.touchY) < tapSlop:
		g.router.TouchCancel()
		g.click(w, h, fx, fy)
	case exploring:
		g.router.TouchCancel()
	default:
		g.router.TouchEnd(g.now, fx, fy)
	}
}

func (g *Game) handleMouse(w, h int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(w, h, g.ptr.x, g.ptr.y)
		if g.onStack() && (g.orbits.Zoom > 1 || isMobile(w)) {
			g.startDrag(g.ptr.x, g.ptr.y)
		}
	}
	if g.ptr.dragging && !g.ptr.touching {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.moveDrag(g.ptr.x, g.ptr.y)
		} else {
			g.endDrag()
		}
	}
}

func (g *Game) onStack() bool {
	return g.state.Current == page.Stack && !g.state.Transitioning
}

func (g *Game) startDrag(x, y float64) {
	g.ptr.dragging, g.ptr.dragged = true, false
	g.ptr.dragX = x - g.orbits.Pan.X
	g.ptr.dragY = y - g.orbits.Pan.Y
}

func (g *Game) moveDrag(x, y float64) {
	if !g.ptr.dragging {
		return
	}
	g.orbits.Pan.X = x - g.ptr.dragX
	g.orbits.Pan.Y = y - g.ptr.dragY
	g.ptr.dragged = true
}

func (g *Game) endDrag() {
	g.ptr.dragging = false
}

// click handles a mouse click or a tap at (x, y).
func (g *Game) click(w, h int, x, y float64) {
	for i, r := range navRects(w, h) {
		if r.contains(x, y) {
			g.router.Select(page.All()[i])
			return
		}
	}
	for i, r := range contactRects(w, h) {
		if r.contains(x, y) {
			g.open(content.Contacts[i].URL)
			return
		}
	}
	if g.state.Transitioning {
		return
	}

	switch g.state.Current {
	case page.Passions:
		g.toggle(g.passionAt(w, h, x, y))
	case page.Projects:
		id, link := g.projectAt(w, h, x, y)
		if link != "" {
			for _, p := range content.Projects {
				if p.ID == link {
					g.open(p.Link)
				}
			}
			return
		}
		g.toggle(id)
	}
}

// toggle opens the card for id, or closes it if it is already open. A click
// on empty space closes any open card.
func (g *Game) toggle(id string) {
	if id == "" || g.ptr.selected == id {
		g.ptr.selected = ""
		return
	}
	g.ptr.selected = id
}

func (g *Game) open(url string) {
	if err := openURL(url); err != nil {
		log.Printf("open %s: %v", url, err)
	}
}

// hover refreshes what is under the cursor on the current page.
func (g *Game) hover(w, h int) {
	p := &g.ptr
	prev := p.hovered
	p.hovered, p.overLink, p.tech = "", "", ""
	p.zone, p.overOrbit = scene.ZoneNone, false
	if g.state.Transitioning {
		return
	}

	switch g.state.Current {
	case page.Passions:
		p.hovered = g.passionAtFrom(w, h, p.x, p.y, prev)
	case page.Projects:
		p.hovered, p.overLink = g.projectAtFrom(w, h, p.x, p.y, prev)
	case page.Stack:
		o := g.orbits
		cx, cy := orbitCenter(w, h, o.Pan.X, o.Pan.Y)
		base := orbitSize(w, h) / 2
		half := base * o.Zoom
		dx, dy := p.x-cx, p.y-cy
		if math.Abs(dx) <= half && math.Abs(dy) <= half {
			p.overOrbit = true
			p.zone = scene.ZoneAt(dx, dy, base, o.Zoom)
		}
		p.tech = g.techAt(w, h, p.x, p.y)
	}
}

func (g *Game) passionAt(w, h int, x, y float64) string {
	return g.passionAtFrom(w, h, x, y, g.ptr.hovered)
}

// passionAtFrom finds the passion under (x, y): an open card first, then a
// visible pin. hovered is the card kept open by the last hover.
func (g *Game) passionAtFrom(w, h int, x, y float64, hovered string) string {
	r := g.reveals[page.Passions]
	for i, p := range content.Passions {
		if (p.ID == g.ptr.selected || p.ID == hovered) && r.PinVisible(i) && passionCard(w, h, i).contains(x, y) {
			return p.ID
		}
	}
	i := pinAt(passionsArea(w, h), passionPoints(), x, y)
	if i < 0 || !r.PinVisible(i) {
		return ""
	}
	return content.Passions[i].ID
}

func (g *Game) projectAt(w, h int, x, y float64) (id, link string) {
	return g.projectAtFrom(w, h, x, y, g.ptr.hovered)
}

// projectAtFrom is passionAtFrom for the globe. link is set when (x, y) is
// on the link line of an open card.
func (g *Game) projectAtFrom(w, h int, x, y float64, hovered string) (id, link string) {
	r := g.reveals[page.Projects]
	for i, p := range content.Projects {
		if (p.ID != g.ptr.selected && p.ID != hovered) || !r.PinVisible(i) {
			continue
		}
		c := projectCard(w, h, i)
		if !c.contains(x, y) {
			continue
		}
		if linkRect(c).contains(x, y) {
			return p.ID, p.ID
		}
		return p.ID, ""
	}
	i := pinAt(globeArea(w, h), projectPoints(), x, y)
	if i < 0 || !r.PinVisible(i) {
		return "", ""
	}
	return content.Projects[i].ID, ""
}

// techAt returns the stack item under (x, y).
func (g *Game) techAt(w, h int, x, y float64) string {
	rad := techRadius(w) * 1.2
	for i, ring := range content.Stack {
		for j, t := range ring.Items {
			tx, ty := g.techPos(w, h, i, j)
			if math.Hypot(x-tx, y-ty) <= rad {
				return t.Name
			}
		}
	}
	return ""
}
