// Package input turns wheel, touch and keyboard events into "go to the next
// page" or "go to the previous page" requests.
//
// The router only reads page state; it hands requests to a callback and
// never changes the current page itself.
package input

import (
	"math"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

// Key is a navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
)

// StateReader exposes the two values the router gates on.
type StateReader interface {
	CurrentPage() page.Page
	InFlight() bool
}

// Router normalises raw input into page-change requests. At most one request
// is emitted per gesture.
type Router struct {
	state   StateReader
	request func(page.Page)

	cooldown       float64
	scrollMin      float64
	touchMin       float64
	lastWheel      float64
	wheelAccepted  bool
	touchX, touchY float64
	touching       bool
}

// NewRouter returns a router that reads from state and sends requests to fn.
func NewRouter(t config.Timings, state StateReader, fn func(page.Page)) *Router {
	return &Router{
		state:     state,
		request:   fn,
		cooldown:  t.ScrollCooldown,
		scrollMin: t.ScrollThreshold,
		touchMin:  t.TouchThreshold,
	}
}

// Wheel handles a wheel delta in browser convention: positive deltaY scrolls
// down, which advances. It reports whether a request was emitted.
func (r *Router) Wheel(nowMs, deltaY float64) bool {
	if r.coolingDown(nowMs) || r.state.InFlight() {
		return false
	}
	if math.Abs(deltaY) <= r.scrollMin {
		return false
	}
	if !r.step(deltaY > 0) {
		return false
	}
	r.lastWheel = nowMs
	r.wheelAccepted = true
	return true
}

// TouchStart records where a gesture began.
func (r *Router) TouchStart(x, y float64) {
	r.touchX, r.touchY = x, y
	r.touching = true
}

// TouchEnd completes a gesture. Swipes that are more horizontal than
// vertical are discarded whatever their size. Swiping up advances.
func (r *Router) TouchEnd(nowMs, x, y float64) bool {
	if !r.touching {
		return false
	}
	r.touching = false

	dx := r.touchX - x
	dy := r.touchY - y
	if math.Abs(dx) > math.Abs(dy) {
		return false
	}
	if r.coolingDown(nowMs) || r.state.InFlight() {
		return false
	}
	if math.Abs(dy) <= r.touchMin {
		return false
	}
	if !r.step(dy > 0) {
		return false
	}
	r.lastWheel = nowMs
	r.wheelAccepted = true
	return true
}

// TouchCancel forgets a gesture in progress.
func (r *Router) TouchCancel() {
	r.touching = false
}

// Key handles a navigation key. Keys are gated only by the in-flight flag.
func (r *Router) Key(k Key) bool {
	if r.state.InFlight() {
		return false
	}
	switch k {
	case KeyDown, KeyPageDown:
		return r.step(true)
	case KeyUp, KeyPageUp:
		return r.step(false)
	}
	return false
}

// Select handles a direct navigation click. It is not rate limited; the
// state machine drops it if a transition is in flight.
func (r *Router) Select(p page.Page) {
	r.request(p)
}

func (r *Router) coolingDown(nowMs float64) bool {
	return r.wheelAccepted && nowMs-r.lastWheel < r.cooldown
}

func (r *Router) step(advance bool) bool {
	cur := r.state.CurrentPage()
	var (
		next page.Page
		ok   bool
	)
	if advance {
		next, ok = cur.Next()
	} else {
		next, ok = cur.Prev()
	}
	if !ok {
		return false
	}
	r.request(next)
	return true
}
