// Package parallax composes background layers during a page transition:
// velocity-scaled offsets, the density cross-fade and skip blur.
package parallax

import (
	"math"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/spatial"
)

// MaxSkipBlur is the blur radius, in pixels, at the midpoint of a skip.
const MaxSkipBlur = 10.0

// Offset scales a base parallax offset by a layer speed. Speeds below 1 move
// slower than the content and read as farther away.
func Offset(base spatial.Vec, speed float64) spatial.Vec {
	return spatial.Vec{X: base.X * speed, Y: base.Y * speed}
}

// Blend is how the outgoing and incoming density layers are drawn for one
// frame.
type Blend struct {
	Main     float64 // opacity of the current-density layer
	Incoming float64 // opacity of the target-density layer
	Blur     float64
	// IncomingOnTop flips the stacking order once the incoming layer is the
	// more opaque of the two.
	IncomingOnTop bool
	Active        bool
}

// Crossfade returns the blend for a transition between two densities at
// progress p. Equal densities need no cross-fade.
func Crossfade(fromDensity, toDensity int, p float64, isSkip bool) Blend {
	if fromDensity == toDensity {
		return Blend{Main: 1}
	}
	p = math.Max(0, math.Min(1, p))
	b := Blend{
		Main:          1 - p,
		Incoming:      p,
		IncomingOnTop: p >= 0.5,
		Active:        true,
	}
	if isSkip {
		b.Blur = math.Sin(p*math.Pi) * MaxSkipBlur
		if b.Blur < 1e-9 {
			b.Blur = 0
		}
	}
	return b
}

// Layers are the per-layer offsets for one frame.
type Layers struct {
	Background spatial.Vec
	Foreground spatial.Vec
	// Drift is a vertical nudge that peaks mid-transition, applied to the
	// star field so the jump reads as motion through space.
	Drift spatial.Vec
}

// Compose derives layer offsets from the runtime parallax vector using the
// speeds in the depth table. forward selects the drift direction.
func Compose(rt spatial.Runtime, d config.Depth, forward bool) Layers {
	l := Layers{
		Background: Offset(rt.Parallax, d.BackgroundParallax),
		Foreground: Offset(rt.Parallax, d.ForegroundParallax),
	}
	if rt.Started && !rt.Done {
		y := math.Sin(rt.Progress*math.Pi) * d.TransitionParallax
		if forward {
			y = -y
		}
		l.Drift = spatial.Vec{Y: y}
	}
	return l
}
