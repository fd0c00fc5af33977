package scene

import (
	"math"
	"math/rand"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

// Sparkle is one twinkling point. X and Y are fractions of the viewport.
type Sparkle struct {
	X, Y     float64
	Size     float64 // px
	DelayMs  float64
	PeriodMs float64
}

var sparkleCounts = map[page.Page]int{
	page.About:    25,
	page.Passions: 40,
	page.Projects: 45,
	page.Stack:    55,
}

// SparkleCount is the number of sparkles drawn on p.
func SparkleCount(p page.Page) int {
	return sparkleCounts[p]
}

// Sparkles returns a deterministic sparkle field for p.
func Sparkles(p page.Page) []Sparkle {
	n := SparkleCount(p)
	rng := rand.New(rand.NewSource(int64(p) + 1))
	out := make([]Sparkle, n)
	for i := range out {
		out[i] = Sparkle{
			X:        rng.Float64(),
			Y:        rng.Float64(),
			Size:     rng.Float64()*3 + 1,
			DelayMs:  rng.Float64() * 5000,
			PeriodMs: rng.Float64()*3000 + 2000,
		}
	}
	return out
}

// Alpha is the sparkle's opacity at nowMs: dark before its delay, then a
// smooth pulse once per period.
func (s Sparkle) Alpha(nowMs float64) float64 {
	t := nowMs - s.DelayMs
	if t < 0 || s.PeriodMs <= 0 {
		return 0
	}
	phase := math.Mod(t, s.PeriodMs) / s.PeriodMs
	return math.Sin(phase * math.Pi)
}
