// Package transition sequences page changes: it accepts one request at a
// time, swaps the active page part-way through, and clears the in-flight flag
// once the transition window has passed.
package transition

import "github.com/Zahin-Mohammad-plug/zahin.org/internal/page"

// Direction is the visual direction of a page change.
type Direction int

const (
	// Forward moves to a later page (the outgoing page zooms out).
	Forward Direction = iota
	// Backward moves to an earlier page.
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "out"
	}
	return "in"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// State is the whole transition state. It is a value: Reduce returns a new
// one and consumers only ever see copies.
type State struct {
	Current       page.Page `json:"current"`
	From          page.Page `json:"from"`
	To            page.Page `json:"to"`
	Transitioning bool      `json:"transitioning"`
	Direction     Direction `json:"direction"`

	// Cinematic is set while a handoff out of the about page is in flight.
	Cinematic bool `json:"cinematic"`
	// Overlay keeps the cinematic overlay mounted. It outlives Transitioning
	// so the overlay can finish its fade.
	Overlay    bool   `json:"overlay"`
	OverlaySeq uint64 `json:"-"`

	// Seq increments for every accepted request; timer events carry it so a
	// late event from an older sequence is ignored.
	Seq uint64 `json:"seq"`
}

// Initial is the state on first load.
func Initial() State {
	return State{Current: page.About, From: page.About, To: page.About, Direction: Backward}
}

// Idle reports whether a new request would be considered.
func (s State) Idle() bool {
	return !s.Transitioning
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// Requested asks for a change to Target.
type Requested struct{ Target page.Page }

// Swapped commits the new page. After it the transition must complete.
type Swapped struct{ Seq uint64 }

// Unveiled clears the in-flight flag.
type Unveiled struct{ Seq uint64 }

// OverlayDone hides the cinematic overlay.
type OverlayDone struct{ Seq uint64 }

func (Requested) isEvent()   {}
func (Swapped) isEvent()     {}
func (Unveiled) isEvent()    {}
func (OverlayDone) isEvent() {}

// IsCinematic reports whether a change from -> to uses the cinematic handoff.
func IsCinematic(from, to page.Page) bool {
	return from == page.About && to != page.About
}

// Reduce is the only function that changes State.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Requested:
		if s.Transitioning || ev.Target == s.Current || !ev.Target.Valid() {
			return s
		}
		s.Seq++
		s.From = s.Current
		s.To = ev.Target
		s.Transitioning = true
		if ev.Target.Index() > s.Current.Index() {
			s.Direction = Forward
		} else {
			s.Direction = Backward
		}
		s.Cinematic = IsCinematic(s.From, s.To)
		if s.Cinematic {
			s.Overlay = true
			s.OverlaySeq = s.Seq
		}

	case Swapped:
		if ev.Seq != s.Seq || !s.Transitioning {
			return s
		}
		s.Current = s.To

	case Unveiled:
		if ev.Seq != s.Seq || !s.Transitioning {
			return s
		}
		s.Current = s.To
		s.Transitioning = false
		s.Cinematic = false

	case OverlayDone:
		if ev.Seq != s.OverlaySeq {
			return s
		}
		s.Overlay = false
	}
	return s
}
