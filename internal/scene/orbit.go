package scene

import "math"

// Zone is one orbit ring of the stack page.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneInner
	ZoneMiddle
	ZoneOuter
)

func (z Zone) String() string {
	switch z {
	case ZoneInner:
		return "inner"
	case ZoneMiddle:
		return "middle"
	case ZoneOuter:
		return "outer"
	}
	return "none"
}

const (
	MinZoom = 0.5
	MaxZoom = 2.5

	// ReferenceWidth is the viewport width at which ring radii are used
	// as-is. Narrower viewports shrink them proportionally.
	ReferenceWidth = 1200.0
)

// RingRadii are the base radii, in pixels, of the inner, middle and outer
// rings.
var RingRadii = [3]float64{95, 175, 270}

// ringSpeeds are degrees per orbit tick for inner, middle and outer.
var ringSpeeds = [3]float64{0.25, -0.18, 0.12}

// Orbits rotates the three stack rings on a fixed tick while the page is
// active.
type Orbits struct {
	TickMs float64

	Rotation [3]float64
	Zoom     float64
	Pan      struct{ X, Y float64 }

	acc float64
}

// NewOrbits returns orbits at rest with unit zoom.
func NewOrbits(tickMs float64) *Orbits {
	if tickMs <= 0 {
		tickMs = 50
	}
	return &Orbits{TickMs: tickMs, Zoom: 1}
}

// Advance accumulates elapsed time and applies one rotation step per whole
// tick. It returns the number of ticks applied.
func (o *Orbits) Advance(elapsedMs float64) int {
	if elapsedMs <= 0 {
		return 0
	}
	o.acc += elapsedMs
	n := int(o.acc / o.TickMs)
	o.acc -= float64(n) * o.TickMs
	for i := range o.Rotation {
		o.Rotation[i] += ringSpeeds[i] * float64(n)
	}
	return n
}

// ZoomBy adjusts zoom by a wheel delta in browser convention and clamps it.
func (o *Orbits) ZoomBy(deltaY float64) {
	o.Zoom = ClampZoom(o.Zoom - deltaY*0.001)
}

// Reset returns zoom and pan to rest. Rotation is kept.
func (o *Orbits) Reset() {
	o.Zoom = 1
	o.Pan.X, o.Pan.Y = 0, 0
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Radius scales a base ring radius to the viewport width.
func Radius(base, viewW float64) float64 {
	return base * math.Min(viewW, ReferenceWidth) / ReferenceWidth
}

// Position returns the offset from the orbit centre of item i of n on a
// ring of the given radius, rotated by rotation degrees.
func Position(i, n int, radius, rotation float64) (x, y float64) {
	if n <= 0 {
		return 0, 0
	}
	angle := float64(i)/float64(n)*360 + rotation
	rad := angle * math.Pi / 180
	return math.Cos(rad) * radius, math.Sin(rad) * radius
}

// ZoneAt classifies a pointer offset (dx, dy) from the orbit centre. The
// distance is normalised by the orbit area's half-width times zoom.
func ZoneAt(dx, dy, baseRadius, zoom float64) Zone {
	if baseRadius <= 0 || zoom <= 0 {
		return ZoneNone
	}
	d := math.Hypot(dx, dy) / (baseRadius * zoom)
	switch {
	case d < 0.15:
		return ZoneInner
	case d < 0.35:
		return ZoneMiddle
	case d < 0.50:
		return ZoneOuter
	}
	return ZoneNone
}
