// Package spatial derives how content and background move during a page
// change and interpolates that motion frame by frame.
package spatial

import (
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

// Transform is a uniform scale followed by a pixel offset.
type Transform struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Identity is the resting transform.
var Identity = Transform{Scale: 1}

// Descriptor is everything about one page change that can be known before
// it starts. Describe builds it from the page pair alone.
type Descriptor struct {
	From               page.Page    `json:"from"`
	To                 page.Page    `json:"to"`
	Duration           float64      `json:"duration_ms"`
	FromDensity        int          `json:"from_density"`
	ToDensity          int          `json:"to_density"`
	IsSkip             bool         `json:"is_skip"`
	ParallaxMultiplier float64      `json:"parallax_multiplier"`
	ContentScale       config.Scale `json:"content_scale"`
	Exit               Transform    `json:"exit_transform"`
	Enter              Transform    `json:"enter_transform"`
}

type pair struct{ from, to page.Page }

// exitTransforms is how the outgoing page recedes for each adjacent pair.
var exitTransforms = map[pair]Transform{
	{page.Passions, page.Projects}: {Scale: 0.3, X: 0, Y: 100},
	{page.Projects, page.Stack}:    {Scale: 0.3, X: 100, Y: 0},
	{page.Projects, page.Passions}: {Scale: 0.3, X: 0, Y: -100},
	{page.Stack, page.Projects}:    {Scale: 0.3, X: -100, Y: 0},
	{page.Passions, page.About}:    {Scale: 0.3, X: 0, Y: -100},
}

// Monitor zoom: the about page's monitor grows into the passions scene.
var (
	portalExit  = Transform{Scale: 3}
	portalEnter = Identity
)

// Describe returns the descriptor for from -> to. ok is false when either
// page is unknown.
func Describe(from, to page.Page, depth config.Depth) (Descriptor, bool) {
	if !from.Valid() || !to.Valid() {
		return Descriptor{}, false
	}

	fromDensity := depth.Density(from)
	toDensity := depth.Density(to)
	forward := to.Index() > from.Index()

	d := Descriptor{
		From:               from,
		To:                 to,
		FromDensity:        fromDensity,
		ToDensity:          toDensity,
		ParallaxMultiplier: depth.Multiplier(toDensity),
		Enter:              Identity,
	}

	if from == page.About && to == page.Passions {
		d.Duration = depth.AdjacentDuration
		d.ParallaxMultiplier = depth.Multiplier(2)
		d.ContentScale = contentScale(depth, to, true, 0.3)
		d.Exit = portalExit
		d.Enter = portalEnter
		return d, true
	}

	if distance := page.Distance(from, to); distance > 1 {
		d.IsSkip = true
		d.Duration = depth.SkipDuration
		if distance == page.Count-1 {
			d.Duration = depth.FullJourneyDuration
		}
		d.ContentScale = contentScale(depth, to, forward, 0.1)
		d.Exit = Transform{Scale: 0.3, X: -100}
		if forward {
			d.Exit.X = 100
		}
		return d, true
	}

	d.Duration = depth.AdjacentDuration
	d.ContentScale = contentScale(depth, to, forward, 0.3)
	d.Exit = Identity
	if t, ok := exitTransforms[pair{from, to}]; ok {
		d.Exit = t
	}
	return d, true
}

// contentScale is the zoom ramp for the incoming content. Forward moves use
// the destination's configured ramp; backward moves shrink towards floor.
func contentScale(depth config.Depth, to page.Page, forward bool, floor float64) config.Scale {
	if !forward {
		return config.Scale{From: 1, To: floor}
	}
	if s, ok := depth.ContentScales[to]; ok {
		return s
	}
	return config.Scale{From: floor, To: 1}
}
