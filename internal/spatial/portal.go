package spatial

import "github.com/Zahin-Mohammad-plug/zahin.org/internal/config"

// Overlay is the cinematic monitor-zoom overlay at one instant.
type Overlay struct {
	Scale   float64
	Alpha   float64
	Visible bool
}

// PortalOverlay computes the overlay for a cinematic handoff elapsedMs after
// it was accepted. The monitor zooms in until the page swap, stays opaque
// until the unveil, then fades out by the end of the cinematic window.
func PortalOverlay(elapsedMs float64, t config.Timings) Overlay {
	if elapsedMs < 0 || elapsedMs >= t.CinematicDuration {
		return Overlay{Scale: 1}
	}

	o := Overlay{Scale: 1, Alpha: 1, Visible: true}

	if t.CinematicSwitch > 0 {
		p := elapsedMs / t.CinematicSwitch
		if p > 1 {
			p = 1
		}
		o.Scale = 1 + 2*EaseInOutCubic(p)
	} else {
		o.Scale = 3
	}

	if elapsedMs > t.CinematicUnveil {
		span := t.CinematicDuration - t.CinematicUnveil
		if span > 0 {
			o.Alpha = 1 - (elapsedMs-t.CinematicUnveil)/span
		} else {
			o.Alpha = 0
		}
	}
	return o
}
