package transition

import (
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/schedule"
)

// Delays are the three timer offsets of one transition, in milliseconds from
// the accepted request. Overlay is zero for standard transitions.
type Delays struct {
	Swap    float64
	Unveil  float64
	Overlay float64
}

// DelaysFor picks the timer offsets for a change from -> to.
func DelaysFor(t config.Timings, from, to page.Page) Delays {
	if IsCinematic(from, to) {
		return Delays{Swap: t.CinematicSwitch, Unveil: t.CinematicUnveil, Overlay: t.CinematicDuration}
	}
	return Delays{Swap: t.StandardSwapDelay, Unveil: t.StandardDuration}
}

// Machine owns the transition State and is its single writer. Every state
// change goes through Reduce; the scheduler delivers the timed events.
type Machine struct {
	timings   config.Timings
	sched     *schedule.Scheduler
	state     State
	timers    []schedule.Handle
	overlay   schedule.Handle
	listeners []func(State)
}

// NewMachine returns an idle machine on the about page.
func NewMachine(t config.Timings, s *schedule.Scheduler) *Machine {
	return &Machine{timings: t, sched: s, state: Initial()}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Subscribe registers fn to receive the state after every change.
func (m *Machine) Subscribe(fn func(State)) {
	m.listeners = append(m.listeners, fn)
}

// Request asks for a change to target. Requests to the current page or while
// a transition is in flight are dropped; the first request in flight wins.
func (m *Machine) Request(target page.Page) bool {
	next := Reduce(m.state, Requested{Target: target})
	if next.Seq == m.state.Seq {
		return false
	}
	m.commit(next)

	seq := next.Seq
	d := DelaysFor(m.timings, next.From, next.To)
	m.timers = m.timers[:0]
	m.timers = append(m.timers,
		m.sched.After(d.Swap, func() { m.dispatch(Swapped{Seq: seq}) }),
		m.sched.After(d.Unveil, func() { m.dispatch(Unveiled{Seq: seq}) }),
	)
	if next.Cinematic {
		m.sched.Cancel(m.overlay)
		m.overlay = m.sched.After(d.Overlay, func() { m.dispatch(OverlayDone{Seq: seq}) })
	}
	return true
}

// Close cancels every outstanding timer. The state is left as it is.
func (m *Machine) Close() {
	for _, h := range m.timers {
		m.sched.Cancel(h)
	}
	m.timers = m.timers[:0]
	m.sched.Cancel(m.overlay)
}

func (m *Machine) dispatch(ev Event) {
	next := Reduce(m.state, ev)
	if next == m.state {
		return
	}
	m.commit(next)
}

func (m *Machine) commit(next State) {
	m.state = next
	for _, fn := range m.listeners {
		fn(next)
	}
}
