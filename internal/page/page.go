// Package page defines the four fixed portfolio pages and their display order.
package page

import (
	"errors"
	"fmt"
	"strings"
)

// Page identifies one full-screen page. The numeric order is the display
// order and drives forward/backward direction inference.
type Page int

const (
	About Page = iota
	Passions
	Projects
	Stack
)

// Count is the number of pages.
const Count = 4

// ErrUnknown is returned by Parse for names that are not a page.
var ErrUnknown = errors.New("page: unknown page")

var names = [Count]string{"about", "passions", "projects", "stack"}

// All returns the pages in display order.
func All() []Page {
	return []Page{About, Passions, Projects, Stack}
}

// Valid reports whether p is one of the four pages.
func (p Page) Valid() bool {
	return p >= About && p <= Stack
}

// Index returns the position of p in the display order.
func (p Page) Index() int {
	return int(p)
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return names[p]
}

// Label is the uppercase navigation label.
func (p Page) Label() string {
	return strings.ToUpper(p.String())
}

// Next returns the page after p, or false when p is the last page.
func (p Page) Next() (Page, bool) {
	if !p.Valid() || p == Stack {
		return p, false
	}
	return p + 1, true
}

// Prev returns the page before p, or false when p is the first page.
func (p Page) Prev() (Page, bool) {
	if !p.Valid() || p == About {
		return p, false
	}
	return p - 1, true
}

// Distance is the number of steps between a and b in display order.
func Distance(a, b Page) int {
	d := b.Index() - a.Index()
	if d < 0 {
		return -d
	}
	return d
}

// Parse resolves a page name, case-insensitively.
func Parse(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Page(i), nil
		}
	}
	return About, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Page) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
