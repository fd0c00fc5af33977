package transition

import "github.com/Zahin-Mohammad-plug/zahin.org/internal/page"

// PageProps is what each page scene receives. Scenes decide for themselves how
// to render direction.
type PageProps struct {
	Active        bool
	Transitioning bool
	Direction     Direction
}

// PropsFor derives the flags for p. A forward change animates every page so
// the outgoing page can zoom away; a backward change animates only the
// current page.
func PropsFor(s State, p page.Page) PageProps {
	props := PageProps{
		Active:        s.Current == p,
		Transitioning: s.Transitioning && (s.Current == p || s.Direction == Forward),
		Direction:     Backward,
	}
	if s.Current == p {
		props.Direction = s.Direction
	}
	return props
}
