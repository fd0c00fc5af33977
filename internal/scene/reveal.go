// Package scene holds the per-page timing that runs after a transition
// lands: scene reveal, pin stagger, orbit rotation and sparkles.
package scene

import (
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/schedule"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/transition"
)

// RevealOptions configure a page's reveal.
type RevealOptions struct {
	Pins int
	// Immediate makes the scene ready as soon as the page is active, even
	// mid-transition. Used by the page the cinematic zoom lands on so its
	// background is already drawn when the overlay fades.
	Immediate bool
	// Stagger delays each pin by PinStaggerDelay after the previous one.
	// Without it every pin appears together.
	Stagger bool
}

// Reveal tracks when a page's scene and pins become visible.
type Reveal struct {
	sched *schedule.Scheduler
	t     config.Timings
	opts  RevealOptions

	ready   bool
	pins    []bool
	timers  []schedule.Handle
	last    transition.PageProps
	started bool
}

// NewReveal returns a hidden reveal for a page with opts.Pins pins.
func NewReveal(s *schedule.Scheduler, t config.Timings, opts RevealOptions) *Reveal {
	return &Reveal{sched: s, t: t, opts: opts, pins: make([]bool, opts.Pins)}
}

// Ready reports whether the scene background and copy are shown.
func (r *Reveal) Ready() bool { return r.ready }

// PinVisible reports whether pin i is shown.
func (r *Reveal) PinVisible(i int) bool {
	return i >= 0 && i < len(r.pins) && r.pins[i]
}

// VisiblePins counts shown pins.
func (r *Reveal) VisiblePins() int {
	n := 0
	for _, v := range r.pins {
		if v {
			n++
		}
	}
	return n
}

// Update reacts to new page props. Only a change in Active or Transitioning
// has an effect.
func (r *Reveal) Update(p transition.PageProps) {
	if r.started && p.Active == r.last.Active && p.Transitioning == r.last.Transitioning {
		return
	}
	r.started = true
	r.last = p
	r.cancel()

	if !p.Active {
		r.hide()
		return
	}

	if r.opts.Immediate {
		r.ready = true
		if !p.Transitioning {
			r.schedulePins()
		}
		return
	}

	if p.Transitioning {
		r.hide()
		return
	}
	r.timers = append(r.timers, r.sched.After(r.t.SceneRevealDelay, func() { r.ready = true }))
	r.schedulePins()
}

// Stop cancels pending reveal timers without changing visibility.
func (r *Reveal) Stop() {
	r.cancel()
}

func (r *Reveal) schedulePins() {
	for i := range r.pins {
		delay := r.t.PinsRevealDelay
		if r.opts.Stagger {
			delay += float64(i) * r.t.PinStaggerDelay
		}
		r.timers = append(r.timers, r.sched.After(delay, func() { r.pins[i] = true }))
	}
}

func (r *Reveal) hide() {
	r.ready = false
	clear(r.pins)
}

func (r *Reveal) cancel() {
	for _, h := range r.timers {
		r.sched.Cancel(h)
	}
	r.timers = r.timers[:0]
}
