package transition

import (
	"testing"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

func TestReduceIgnoresStaleEvents(t *testing.T) {
	s := Reduce(Initial(), Requested{Target: page.Projects})

	if got := Reduce(s, Swapped{Seq: s.Seq + 1}); got != s {
		t.Errorf("stale Swapped changed state: %+v", got)
	}
	if got := Reduce(s, Unveiled{Seq: s.Seq - 1}); got != s {
		t.Errorf("stale Unveiled changed state: %+v", got)
	}
}

func TestReduceRejectsInvalidTarget(t *testing.T) {
	s := Initial()
	if got := Reduce(s, Requested{Target: page.Page(7)}); got != s {
		t.Errorf("invalid target accepted: %+v", got)
	}
}

func TestReduceUnveilCommitsPage(t *testing.T) {
	s := Reduce(Initial(), Requested{Target: page.Stack})
	s = Reduce(s, Unveiled{Seq: s.Seq})

	if s.Current != page.Stack || s.Transitioning || s.Cinematic {
		t.Errorf("after unveil = %+v", s)
	}
	if !s.Overlay {
		t.Error("overlay should still be up until OverlayDone")
	}
	s = Reduce(s, OverlayDone{Seq: s.OverlaySeq})
	if s.Overlay {
		t.Error("OverlayDone did not hide overlay")
	}
}

func TestPropsFor(t *testing.T) {
	type tc struct {
		state State
		p     page.Page
		want  PageProps
	}

	idle := Initial()
	forward := Reduce(Initial(), Requested{Target: page.Projects})
	backward := State{Current: page.Stack, From: page.Stack, To: page.Passions, Transitioning: true, Direction: Backward, Seq: 1}

	tests := map[string]tc{
		"idle current page":            {idle, page.About, PageProps{Active: true, Direction: Backward}},
		"idle other page":              {idle, page.Stack, PageProps{Direction: Backward}},
		"forward outgoing page":        {forward, page.About, PageProps{Active: true, Transitioning: true, Direction: Forward}},
		"forward incoming page":        {forward, page.Projects, PageProps{Transitioning: true, Direction: Backward}},
		"backward outgoing page":       {backward, page.Stack, PageProps{Active: true, Transitioning: true, Direction: Backward}},
		"backward uninvolved page":     {backward, page.About, PageProps{Direction: Backward}},
		"backward incoming not yet on": {backward, page.Passions, PageProps{Direction: Backward}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := PropsFor(tt.state, tt.p); got != tt.want {
				t.Errorf("PropsFor(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}
