package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvScrollCooldown  = "PORTFOLIO_SCROLL_COOLDOWN_MS"
	EnvScrollThreshold = "PORTFOLIO_SCROLL_THRESHOLD"
	EnvTouchThreshold  = "PORTFOLIO_TOUCH_THRESHOLD"
	EnvReducedMotion   = "PORTFOLIO_REDUCED_MOTION"
	EnvTileImage       = "PORTFOLIO_TILE_IMAGE"
	EnvWidth           = "PORTFOLIO_WIDTH"
	EnvHeight          = "PORTFOLIO_HEIGHT"
	EnvPort            = "PORT"
)

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the PORTFOLIO_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := envFloat(EnvScrollCooldown, &c.Timings.ScrollCooldown); err != nil {
		return err
	}
	if err := envFloat(EnvScrollThreshold, &c.Timings.ScrollThreshold); err != nil {
		return err
	}
	if err := envFloat(EnvTouchThreshold, &c.Timings.TouchThreshold); err != nil {
		return err
	}
	if err := envInt(EnvWidth, &c.Window.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &c.Window.Height); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvReducedMotion); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvReducedMotion, err)
		}
		c.ReducedMotion = b
	}
	if v := os.Getenv(EnvTileImage); v != "" {
		c.TileImage = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.PreviewAddr = ":" + v
	}
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = f
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
