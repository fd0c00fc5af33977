package transition

import (
	"testing"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/schedule"
)

func newTestMachine() (*Machine, *schedule.Scheduler) {
	s := schedule.New(0)
	return NewMachine(config.DefaultTimings(), s), s
}

func TestRequestToCurrentPageStaysIdle(t *testing.T) {
	m, s := newTestMachine()

	if m.Request(page.About) {
		t.Fatal("Request(about) from about was accepted")
	}
	if m.State() != Initial() {
		t.Errorf("state changed: %+v", m.State())
	}
	if s.Len() != 0 {
		t.Errorf("timers scheduled for a no-op request: %d", s.Len())
	}
}

func TestCinematicScenario(t *testing.T) {
	m, s := newTestMachine()
	tm := config.DefaultTimings()

	if !m.Request(page.Passions) {
		t.Fatal("Request(passions) rejected")
	}
	st := m.State()
	if !st.Transitioning || !st.Cinematic || !st.Overlay {
		t.Fatalf("after request state = %+v, want transitioning cinematic overlay", st)
	}
	if st.Direction != Forward {
		t.Errorf("Direction = %v, want forward", st.Direction)
	}

	s.Advance(tm.CinematicSwitch - 1)
	if m.State().Current != page.About {
		t.Fatal("page swapped before the switch point")
	}
	s.Advance(tm.CinematicSwitch)
	if got := m.State().Current; got != page.Passions {
		t.Fatalf("Current = %v at switch point, want passions", got)
	}
	if !m.State().Transitioning {
		t.Fatal("Transitioning cleared at switch point")
	}

	s.Advance(tm.CinematicUnveil)
	st = m.State()
	if st.Transitioning {
		t.Fatal("still transitioning after unveil")
	}
	if !st.Overlay {
		t.Fatal("overlay hidden before its fade finished")
	}

	s.Advance(tm.CinematicDuration)
	if m.State().Overlay {
		t.Error("overlay still visible after cinematic duration")
	}
}

func TestStandardSequenceOrdering(t *testing.T) {
	m, s := newTestMachine()
	tm := config.DefaultTimings()

	// Leave the about page first; that transition is cinematic.
	m.Request(page.Passions)
	s.Advance(tm.CinematicDuration)

	var seen []State
	m.Subscribe(func(st State) { seen = append(seen, st) })

	start := s.Now()
	if !m.Request(page.Projects) {
		t.Fatal("Request(projects) rejected")
	}
	if m.State().Cinematic || m.State().Overlay {
		t.Fatalf("passions -> projects should be standard: %+v", m.State())
	}

	s.Advance(start + tm.StandardSwapDelay)
	if m.State().Current != page.Projects || !m.State().Transitioning {
		t.Fatalf("after swap delay state = %+v", m.State())
	}
	s.Advance(start + tm.StandardDuration)
	if m.State().Transitioning {
		t.Fatal("still transitioning after standard duration")
	}

	if len(seen) != 3 {
		t.Fatalf("listener saw %d states, want 3 (request, swap, unveil)", len(seen))
	}
	if seen[0].Current != page.Passions || seen[1].Current != page.Projects || seen[2].Transitioning {
		t.Errorf("broadcast sequence = %+v", seen)
	}
}

func TestDropWhileBusy(t *testing.T) {
	m, s := newTestMachine()

	m.Request(page.Stack)
	before := m.State()
	pending := s.Len()

	if m.Request(page.Projects) {
		t.Fatal("second request accepted while in flight")
	}
	if m.State() != before {
		t.Errorf("in-flight state changed: %+v -> %+v", before, m.State())
	}
	if s.Len() != pending {
		t.Errorf("timers changed: %d -> %d", pending, s.Len())
	}

	s.Advance(10_000)
	if m.State().Current != page.Stack {
		t.Errorf("Current = %v, want stack (first request wins)", m.State().Current)
	}
}

func TestBackwardDirection(t *testing.T) {
	m, s := newTestMachine()
	m.Request(page.Stack)
	s.Advance(10_000)

	m.Request(page.Passions)
	if d := m.State().Direction; d != Backward {
		t.Errorf("Direction = %v, want backward", d)
	}
}

func TestCloseCancelsTimers(t *testing.T) {
	m, s := newTestMachine()
	m.Request(page.Projects)
	m.Close()

	s.Advance(10_000)
	st := m.State()
	if st.Current != page.About || !st.Transitioning {
		t.Errorf("timers fired after Close: %+v", st)
	}
	if s.Len() != 0 {
		t.Errorf("scheduler still holds %d timers", s.Len())
	}
}

func TestOverlaySurvivesQuickFollowUp(t *testing.T) {
	m, s := newTestMachine()
	tm := config.DefaultTimings()

	m.Request(page.Passions)
	s.Advance(tm.CinematicUnveil)

	if !m.Request(page.Projects) {
		t.Fatal("request after unveil rejected")
	}
	if !m.State().Overlay {
		t.Fatal("follow-up request hid the cinematic overlay early")
	}
	s.Advance(tm.CinematicDuration)
	if m.State().Overlay {
		t.Error("overlay not hidden at cinematic duration")
	}
}

func TestDelaysFor(t *testing.T) {
	tm := config.DefaultTimings()

	type tc struct {
		from, to page.Page
		want     Delays
	}
	tests := map[string]tc{
		"about to passions is cinematic": {page.About, page.Passions, Delays{1250, 1500, 2200}},
		"about to stack is cinematic":    {page.About, page.Stack, Delays{1250, 1500, 2200}},
		"stack to about is standard":     {page.Stack, page.About, Delays{350, 700, 0}},
		"passions to projects":           {page.Passions, page.Projects, Delays{350, 700, 0}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := DelaysFor(tm, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("DelaysFor(%v, %v) = %+v, want %+v", tt.from, tt.to, got, tt.want)
			}
			if got.Swap > got.Unveil {
				t.Errorf("swap %v after unveil %v", got.Swap, got.Unveil)
			}
		})
	}
}
