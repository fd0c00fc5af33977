// Package schedule is a single-threaded timer list driven by one clock.
//
// Callbacks never run on their own goroutine: they fire from Advance, in
// fire-time order, with ties broken by the order they were scheduled. Tests
// drive the clock by hand; the game loop feeds it wall time once per tick.
package schedule

import "sort"

// Handle identifies a scheduled callback.
type Handle uint64

type entry struct {
	id     Handle
	fireAt float64
	fn     func()
}

// Scheduler holds pending callbacks keyed by absolute fire time in
// milliseconds.
type Scheduler struct {
	now     float64
	nextID  Handle
	pending []entry
}

// New returns a scheduler whose clock starts at startMs.
func New(startMs float64) *Scheduler {
	return &Scheduler{now: startMs}
}

// Now is the clock value of the last Advance.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// After schedules fn to run delayMs after the current clock value.
func (s *Scheduler) After(delayMs float64, fn func()) Handle {
	if delayMs < 0 {
		delayMs = 0
	}
	return s.At(s.now+delayMs, fn)
}

// At schedules fn for an absolute clock value.
func (s *Scheduler) At(fireAtMs float64, fn func()) Handle {
	s.nextID++
	e := entry{id: s.nextID, fireAt: fireAtMs, fn: fn}

	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].fireAt > fireAtMs
	})
	s.pending = append(s.pending, entry{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = e

	return e.id
}

// Cancel removes a pending callback. It reports whether anything was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, e := range s.pending {
		if e.id == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending callback.
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}

// Advance moves the clock to nowMs and runs every callback due at or before
// it, in fire order. While a callback runs the clock reads its fire time, so
// a timer it schedules is measured from there; one that is already due runs
// in the same call. A clock that goes backwards is ignored.
func (s *Scheduler) Advance(nowMs float64) int {
	target := max(nowMs, s.now)

	fired := 0
	for len(s.pending) > 0 && s.pending[0].fireAt <= target {
		e := s.pending[0]
		s.pending = s.pending[1:]
		if e.fireAt > s.now {
			s.now = e.fireAt
		}
		e.fn()
		fired++
	}
	s.now = target
	return fired
}
