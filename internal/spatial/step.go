package spatial

import "math"

// Vec is a 2D pixel offset.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Runtime is the per-frame animation state of one transition.
type Runtime struct {
	// Progress is the eased progress in [0, 1].
	Progress float64   `json:"progress"`
	Raw      float64   `json:"raw_progress"`
	Content  Transform `json:"content_transform"`
	Parallax Vec       `json:"parallax_offset"`

	StartMs float64 `json:"-"`
	Started bool    `json:"-"`
	Done    bool    `json:"done"`
}

// Rest is the runtime value while no transition is active.
func Rest() Runtime {
	return Runtime{Content: Identity}
}

// EaseOutCubic decelerates to the end.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Step advances rt to frame time nowMs. The first step latches the start
// time. Once raw progress reaches 1 the runtime is Done and further steps
// return it unchanged.
func Step(rt Runtime, d Descriptor, nowMs float64) Runtime {
	if rt.Done {
		return rt
	}
	if !rt.Started {
		rt.StartMs = nowMs
		rt.Started = true
	}

	raw := 1.0
	if d.Duration > 0 {
		raw = math.Min((nowMs-rt.StartMs)/d.Duration, 1)
	}
	if raw < rt.Raw {
		raw = rt.Raw
	}
	eased := EaseOutCubic(raw)

	rt.Raw = raw
	rt.Progress = eased
	rt.Content = Transform{
		Scale: d.ContentScale.From + (d.ContentScale.To-d.ContentScale.From)*eased,
		X:     d.Enter.X*(1-eased) + d.Exit.X*eased,
		Y:     d.Enter.Y*(1-eased) + d.Exit.Y*eased,
	}
	rt.Parallax = Vec{
		X: rt.Content.X * d.ParallaxMultiplier,
		Y: rt.Content.Y * d.ParallaxMultiplier,
	}
	rt.Done = raw >= 1
	return rt
}
