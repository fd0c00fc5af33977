package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

func TestDefaultOrdering(t *testing.T) {
	cfg := Default()
	tm := cfg.Timings

	if !(tm.StandardSwapDelay <= tm.StandardDuration) {
		t.Errorf("standard swap %v > duration %v", tm.StandardSwapDelay, tm.StandardDuration)
	}
	if !(tm.CinematicSwitch <= tm.CinematicUnveil && tm.CinematicUnveil <= tm.CinematicDuration) {
		t.Errorf("cinematic ordering broken: %v %v %v", tm.CinematicSwitch, tm.CinematicUnveil, tm.CinematicDuration)
	}
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("Default().Warnings() = %v, want none", w)
	}
}

func TestDepthLookups(t *testing.T) {
	d := DefaultDepth()

	type tc struct {
		p    page.Page
		want int
	}
	tests := map[string]tc{
		"about is nearest":  {p: page.About, want: 1},
		"passions":          {p: page.Passions, want: 2},
		"projects":          {p: page.Projects, want: 4},
		"stack is farthest": {p: page.Stack, want: 8},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := d.Density(tt.p); got != tt.want {
				t.Errorf("Density(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}

	if d.Multiplier(8) <= d.Multiplier(1) {
		t.Errorf("denser grid should move faster: m(8)=%v m(1)=%v", d.Multiplier(8), d.Multiplier(1))
	}
	if got := d.Multiplier(3); got != 1 {
		t.Errorf("Multiplier(3) = %v, want fallback 1", got)
	}
}

func TestWarnings(t *testing.T) {
	cfg := Default()
	cfg.Timings.CinematicSwitch = 1600
	cfg.Depth.GridDensities[page.Stack] = 3

	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("Warnings() = %v, want 2 entries", w)
	}
	joined := strings.Join(w, "\n")
	if !strings.Contains(joined, "cinematic switch") || !strings.Contains(joined, "grid density 3") {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	body := `{
		"timings": {"scroll_cooldown_ms": 400},
		"depth": {"grid_densities": {"stack": 4}},
		"reduced_motion": true
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timings.ScrollCooldown != 400 {
		t.Errorf("ScrollCooldown = %v, want 400", cfg.Timings.ScrollCooldown)
	}
	if cfg.Timings.ScrollThreshold != 20 {
		t.Errorf("ScrollThreshold = %v, want default 20", cfg.Timings.ScrollThreshold)
	}
	if got := cfg.Depth.Density(page.Stack); got != 4 {
		t.Errorf("Density(stack) = %d, want 4", got)
	}
	if got := cfg.Depth.Density(page.Projects); got != 4 {
		t.Errorf("Density(projects) = %d, want default 4", got)
	}
	if !cfg.ReducedMotion {
		t.Error("ReducedMotion not loaded")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load on missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load on bad JSON err = %v, want parse error", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvScrollCooldown, "250")
	t.Setenv(EnvTouchThreshold, "75")
	t.Setenv(EnvReducedMotion, "true")
	t.Setenv(EnvTileImage, "/tmp/tile.png")
	t.Setenv(EnvWidth, "1920")
	t.Setenv(EnvPort, "9000")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Timings.ScrollCooldown != 250 || cfg.Timings.TouchThreshold != 75 {
		t.Errorf("thresholds = %v/%v, want 250/75", cfg.Timings.ScrollCooldown, cfg.Timings.TouchThreshold)
	}
	if !cfg.ReducedMotion {
		t.Error("ReducedMotion not applied")
	}
	if cfg.TileImage != "/tmp/tile.png" {
		t.Errorf("TileImage = %q", cfg.TileImage)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 800 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.PreviewAddr != ":9000" {
		t.Errorf("PreviewAddr = %q, want :9000", cfg.PreviewAddr)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvScrollThreshold, "lots")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv should reject a non-numeric threshold")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	const key = "PORTFOLIO_TEST_ENV_FILE_KEY"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if got := os.Getenv(key); got != "hello" {
		t.Errorf("%s = %q, want hello", key, got)
	}
}

func TestSetupPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "portfolio.json")
	if err := os.WriteFile(cfgPath, []byte(`{"window":{"width":1000,"height":700},"tile_image":"file.png"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvHeight, "900")
	t.Setenv(EnvTileImage, "env.png")

	cfg, err := Setup(cfgPath, filepath.Join(dir, "missing.env"), Flags{TileImage: "flag.png", ReducedMotion: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if cfg.Window.Width != 1000 {
		t.Errorf("width = %d, want 1000 from file", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("height = %d, want 900 from env", cfg.Window.Height)
	}
	if cfg.TileImage != "flag.png" {
		t.Errorf("tile = %q, want flag.png", cfg.TileImage)
	}
	if !cfg.ReducedMotion {
		t.Error("reduced motion flag ignored")
	}
}

func TestSetupBadFile(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "nope.json"), "", Flags{}); err == nil {
		t.Error("Setup with a missing config file succeeded")
	}
}
