package schedule

// Debouncer coalesces bursts of triggers into one callback that fires once
// the burst has been quiet for Delay milliseconds.
type Debouncer struct {
	s       *Scheduler
	delay   float64
	fn      func()
	pending Handle
	armed   bool
}

// NewDebouncer returns a debouncer that runs fn on s.
func NewDebouncer(s *Scheduler, delayMs float64, fn func()) *Debouncer {
	return &Debouncer{s: s, delay: delayMs, fn: fn}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.Stop()
	d.armed = true
	d.pending = d.s.After(d.delay, func() {
		d.armed = false
		d.fn()
	})
}

// Pending reports whether a callback is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Stop cancels a waiting callback.
func (d *Debouncer) Stop() {
	if d.armed {
		d.s.Cancel(d.pending)
		d.armed = false
	}
}
