package content

import (
	"net/url"
	"testing"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

func TestHeadings(t *testing.T) {
	for _, p := range page.All() {
		if Heading(p) == "" {
			t.Errorf("no heading for %v", p)
		}
	}
	if Heading(page.Page(99)) != "" {
		t.Error("heading for unknown page")
	}
}

func TestLinksParse(t *testing.T) {
	var links []string
	for _, p := range Projects {
		links = append(links, p.Link)
	}
	for _, c := range Contacts {
		links = append(links, c.URL)
	}
	for _, l := range links {
		u, err := url.Parse(l)
		if err != nil {
			t.Errorf("%q: %v", l, err)
			continue
		}
		if u.Scheme != "https" && u.Scheme != "mailto" {
			t.Errorf("%q: unexpected scheme %q", l, u.Scheme)
		}
	}
}

func TestPinsInsideContainer(t *testing.T) {
	check := func(id string, p Point) {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("%s: pin %+v outside container", id, p)
		}
	}
	for _, p := range Passions {
		check(p.ID, p.Pin)
	}
	for _, p := range Projects {
		check(p.ID, p.Pin)
	}
}

func TestStackRings(t *testing.T) {
	want := []int{5, 7, 6}
	for i, r := range Stack {
		if len(r.Items) != want[i] {
			t.Errorf("ring %q has %d items, want %d", r.Label, len(r.Items), want[i])
		}
	}
}
