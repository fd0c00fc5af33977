package config

// Flags holds CLI flag values that override the file and environment.
// Zero values leave the setting alone.
type Flags struct {
	TileImage     string
	Width         int
	Height        int
	ReducedMotion bool
	Addr          string
}

// Resolve applies CLI flags on top of c.
func (c *Config) Resolve(f Flags) {
	if f.TileImage != "" {
		c.TileImage = f.TileImage
	}
	if f.Width > 0 {
		c.Window.Width = f.Width
	}
	if f.Height > 0 {
		c.Window.Height = f.Height
	}
	if f.ReducedMotion {
		c.ReducedMotion = true
	}
	if f.Addr != "" {
		c.PreviewAddr = f.Addr
	}
}

// Setup builds the effective configuration: defaults, then the JSON file at
// path if any, then the .env file and process environment, then flags.
func Setup(path, envFile string, f Flags) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	cfg.Resolve(f)
	return cfg, nil
}
