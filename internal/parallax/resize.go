package parallax

import (
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/schedule"
)

// Viewport tracks the window size and reports a settled size only after
// resize events have stopped for the debounce delay.
type Viewport struct {
	W, H int

	pendingW, pendingH int
	deb                *schedule.Debouncer
	onSettle           func(w, h int)
}

// NewViewport returns a viewport of the given size. onSettle runs once per
// burst of resizes, on the scheduler's clock.
func NewViewport(s *schedule.Scheduler, delayMs float64, w, h int, onSettle func(w, h int)) *Viewport {
	v := &Viewport{W: w, H: h, pendingW: w, pendingH: h, onSettle: onSettle}
	v.deb = schedule.NewDebouncer(s, delayMs, v.settle)
	return v
}

// Resize records a new size. Repeated calls within the delay coalesce, and
// a call with the size already pending does not restart the delay, so it is
// safe to call every frame.
func (v *Viewport) Resize(w, h int) {
	if w == v.pendingW && h == v.pendingH {
		return
	}
	v.pendingW, v.pendingH = w, h
	v.deb.Trigger()
}

// Pending reports whether a resize is waiting to settle.
func (v *Viewport) Pending() bool {
	return v.deb.Pending()
}

// Stop drops a pending resize.
func (v *Viewport) Stop() {
	v.deb.Stop()
}

func (v *Viewport) settle() {
	if v.pendingW == v.W && v.pendingH == v.H {
		return
	}
	v.W, v.H = v.pendingW, v.pendingH
	if v.onSettle != nil {
		v.onSettle(v.W, v.H)
	}
}
