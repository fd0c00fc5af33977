// Package config holds the static timing, threshold and depth tables that
// drive page transitions, plus the loaders that let a JSON file, a .env file
// or the environment tune them.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

// Timings are millisecond delays and pixel thresholds. Changing them alters
// feel and speed only.
type Timings struct {
	// Cinematic (about -> any) handoff.
	CinematicDuration float64 `json:"cinematic_duration_ms"`
	CinematicSwitch   float64 `json:"cinematic_switch_ms"`
	CinematicUnveil   float64 `json:"cinematic_unveil_ms"`

	// Standard page transition.
	StandardSwapDelay float64 `json:"standard_swap_delay_ms"`
	StandardDuration  float64 `json:"standard_duration_ms"`

	// Scene reveal.
	SceneRevealDelay float64 `json:"scene_reveal_delay_ms"`
	PinsRevealDelay  float64 `json:"pins_reveal_delay_ms"`
	PinStaggerDelay  float64 `json:"pin_stagger_delay_ms"`

	// Input gating.
	ScrollCooldown  float64 `json:"scroll_cooldown_ms"`
	ScrollThreshold float64 `json:"scroll_threshold"`
	TouchThreshold  float64 `json:"touch_threshold"`

	ResizeDebounce float64 `json:"resize_debounce_ms"`

	// Ambient animation periods.
	OrbitTick       float64 `json:"orbit_tick_ms"`
	TwinkleDuration float64 `json:"twinkle_duration_ms"`
	FloatDuration   float64 `json:"float_duration_ms"`
	PanDuration     float64 `json:"pan_duration_ms"`
}

// Scale is a content scale ramp.
type Scale struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Depth is the spatial table: durations per transition kind, tile density per
// page and the parallax speed that goes with each density.
type Depth struct {
	AdjacentDuration    float64 `json:"adjacent_duration_ms"`
	SkipDuration        float64 `json:"skip_duration_ms"`
	FullJourneyDuration float64 `json:"full_journey_duration_ms"`

	GridDensities       map[page.Page]int   `json:"grid_densities"`
	ParallaxMultipliers map[int]float64     `json:"parallax_multipliers"`
	ContentScales       map[page.Page]Scale `json:"content_scales"`

	BackgroundParallax float64 `json:"background_parallax"`
	ForegroundParallax float64 `json:"foreground_parallax"`
	TransitionParallax float64 `json:"transition_parallax"`
}

// Window is the initial window size in device-independent pixels.
type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Config is everything the portfolio reads at startup.
type Config struct {
	Timings Timings `json:"timings"`
	Depth   Depth   `json:"depth"`
	Window  Window  `json:"window"`

	// TileImage is an optional path to the background tile. Empty means the
	// generated starfield.
	TileImage string `json:"tile_image"`

	ReducedMotion bool `json:"reduced_motion"`

	// WheelPixelsPerNotch converts ebiten wheel notches to browser-style
	// pixel deltas.
	WheelPixelsPerNotch float64 `json:"wheel_pixels_per_notch"`

	PreviewAddr string `json:"preview_addr"`
}

// Densities accepted by the tile renderer.
var Densities = []int{1, 2, 4, 8}

// ValidDensity reports whether d is one of Densities.
func ValidDensity(d int) bool {
	for _, v := range Densities {
		if v == d {
			return true
		}
	}
	return false
}

// DefaultTimings returns the tuned timing table.
func DefaultTimings() Timings {
	return Timings{
		CinematicDuration: 2200,
		CinematicSwitch:   1250,
		CinematicUnveil:   1500,

		StandardSwapDelay: 350,
		StandardDuration:  700,

		SceneRevealDelay: 180,
		PinsRevealDelay:  650,
		PinStaggerDelay:  100,

		ScrollCooldown:  1000,
		ScrollThreshold: 20,
		TouchThreshold:  50,

		ResizeDebounce: 150,

		OrbitTick:       50,
		TwinkleDuration: 2000,
		FloatDuration:   8000,
		PanDuration:     180000,
	}
}

// DefaultDepth returns the depth table. Deeper pages use finer grids.
func DefaultDepth() Depth {
	return Depth{
		AdjacentDuration:    800,
		SkipDuration:        1200,
		FullJourneyDuration: 1600,

		GridDensities: map[page.Page]int{
			page.About:    1,
			page.Passions: 2,
			page.Projects: 4,
			page.Stack:    8,
		},
		ParallaxMultipliers: map[int]float64{
			1: 1.0,
			2: 1.2,
			4: 1.5,
			8: 2.0,
		},
		ContentScales: map[page.Page]Scale{
			page.Passions: {From: 0.3, To: 1},
			page.Projects: {From: 0.2, To: 1},
			page.Stack:    {From: 0.1, To: 1},
		},

		BackgroundParallax: 0.15,
		ForegroundParallax: 1.05,
		TransitionParallax: 30,
	}
}

// Default returns the complete built-in configuration.
func Default() Config {
	return Config{
		Timings:             DefaultTimings(),
		Depth:               DefaultDepth(),
		Window:              Window{Width: 1280, Height: 800},
		WheelPixelsPerNotch: 100,
		PreviewAddr:         ":8080",
	}
}

// Load reads a JSON config file on top of Default. Fields absent from the
// file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Density returns the grid density configured for p, defaulting to 1.
func (d Depth) Density(p page.Page) int {
	if v, ok := d.GridDensities[p]; ok && ValidDensity(v) {
		return v
	}
	return 1
}

// Multiplier returns the parallax multiplier for a density, defaulting to 1.
func (d Depth) Multiplier(density int) float64 {
	if v, ok := d.ParallaxMultipliers[density]; ok {
		return v
	}
	return 1
}

// Warnings lists configuration mistakes that would visibly break the
// transition sequencing. They are reported, never enforced.
func (c Config) Warnings() []string {
	var out []string
	t := c.Timings
	if t.StandardSwapDelay > t.StandardDuration {
		out = append(out, fmt.Sprintf("standard swap delay %.0fms exceeds duration %.0fms", t.StandardSwapDelay, t.StandardDuration))
	}
	if t.CinematicSwitch > t.CinematicUnveil {
		out = append(out, fmt.Sprintf("cinematic switch %.0fms exceeds unveil %.0fms", t.CinematicSwitch, t.CinematicUnveil))
	}
	if t.CinematicUnveil > t.CinematicDuration {
		out = append(out, fmt.Sprintf("cinematic unveil %.0fms exceeds duration %.0fms", t.CinematicUnveil, t.CinematicDuration))
	}
	for p, v := range c.Depth.GridDensities {
		if !ValidDensity(v) {
			out = append(out, fmt.Sprintf("grid density %d for %s is not one of %v", v, p, Densities))
		}
	}
	return out
}
