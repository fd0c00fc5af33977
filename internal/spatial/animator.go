package spatial

import (
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/transition"
)

// Animator runs one transition at a time. It is driven by the game loop's
// frame callback; with ReducedMotion it never animates and always reports
// the resting runtime.
type Animator struct {
	ReducedMotion bool

	desc    Descriptor
	rt      Runtime
	running bool
}

// NewAnimator returns an idle animator.
func NewAnimator(reducedMotion bool) *Animator {
	return &Animator{ReducedMotion: reducedMotion, rt: Rest()}
}

// Start begins animating d. The start time latches on the first Tick.
func (a *Animator) Start(d Descriptor) {
	a.desc = d
	a.rt = Rest()
	a.running = !a.ReducedMotion
}

// Tick advances the frame loop. It reports whether another frame is wanted.
func (a *Animator) Tick(nowMs float64) bool {
	if !a.running {
		return false
	}
	a.rt = Step(a.rt, a.desc, nowMs)
	if a.rt.Done {
		a.running = false
	}
	return a.running
}

// Reset returns to the resting transform and stops the frame loop.
func (a *Animator) Reset() {
	a.rt = Rest()
	a.running = false
}

// Running reports whether the frame loop is active.
func (a *Animator) Running() bool {
	return a.running
}

// Runtime is the latest frame value.
func (a *Animator) Runtime() Runtime {
	return a.rt
}

// Descriptor is the transition being animated (or last animated).
func (a *Animator) Descriptor() Descriptor {
	return a.desc
}

// Follow keeps the animator in step with the transition state. A newly
// accepted transition starts its descriptor; the end of a transition
// returns the runtime to rest, even if the frame loop has not finished. It
// reports whether a new transition was started.
func (a *Animator) Follow(prev, next transition.State, depth config.Depth) bool {
	if next.Seq != prev.Seq && next.Transitioning {
		d, ok := Describe(next.From, next.To, depth)
		if !ok {
			a.Reset()
			return false
		}
		a.Start(d)
		return true
	}
	if prev.Transitioning && !next.Transitioning {
		a.Reset()
	}
	return false
}
