package config

// Raw types mirror the file layout with pointer fields so an absent key can
// be told apart from a zero value.

type RawWindow struct {
	Title  *string `yaml:"title"`
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	X      *int    `yaml:"x"`
	Y      *int    `yaml:"y"`
}

type RawConfig struct {
	Window     *RawWindow `yaml:"window"`
	LogLevel   *string    `yaml:"log_level"`
	ClearColor *string    `yaml:"clear_color"`
	Display    *string    `yaml:"display"`
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if w := raw.Window; w != nil {
		if w.Title != nil {
			cfg.Window.Title = *w.Title
		}
		if w.Width != nil {
			cfg.Window.Width = *w.Width
		}
		if w.Height != nil {
			cfg.Window.Height = *w.Height
		}
		if w.X != nil {
			x := *w.X
			cfg.Window.X = &x
		}
		if w.Y != nil {
			y := *w.Y
			cfg.Window.Y = &y
		}
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.ClearColor != nil {
		cfg.ClearColor = *raw.ClearColor
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	return cfg
}
