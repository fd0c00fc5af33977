package page

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	type tc struct {
		in      string
		want    Page
		wantErr bool
	}

	tests := map[string]tc{
		"about":          {in: "about", want: About},
		"mixed case":     {in: "Passions", want: Passions},
		"padded":         {in: "  stack ", want: Stack},
		"projects":       {in: "projects", want: Projects},
		"unknown":        {in: "contact", wantErr: true},
		"empty is error": {in: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknown) {
					t.Fatalf("Parse(%q) err = %v, want ErrUnknown", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextPrev(t *testing.T) {
	if _, ok := Stack.Next(); ok {
		t.Error("Stack.Next() should not exist")
	}
	if _, ok := About.Prev(); ok {
		t.Error("About.Prev() should not exist")
	}
	if p, ok := About.Next(); !ok || p != Passions {
		t.Errorf("About.Next() = %v, %v; want passions, true", p, ok)
	}
	if p, ok := Stack.Prev(); !ok || p != Projects {
		t.Errorf("Stack.Prev() = %v, %v; want projects, true", p, ok)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(About, Stack); d != 3 {
		t.Errorf("Distance(about, stack) = %d, want 3", d)
	}
	if d := Distance(Projects, Passions); d != 1 {
		t.Errorf("Distance(projects, passions) = %d, want 1", d)
	}
	if d := Distance(Passions, Passions); d != 0 {
		t.Errorf("Distance(passions, passions) = %d, want 0", d)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, p := range All() {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var got Page
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if got != p {
			t.Errorf("round trip %v -> %v", p, got)
		}
	}
	if _, err := Page(9).MarshalText(); err == nil {
		t.Error("MarshalText on invalid page should fail")
	}
}
