package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/mono/internal/window"
)

const (
	DefaultLogLevel   = "info"
	DefaultClearColor = "black"
)

// WindowConfig holds the properties of the demo window. A nil X or Y lets
// the window system place that axis.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      *int   `yaml:"x,omitempty"`
	Y      *int   `yaml:"y,omitempty"`
}

// Config is the effective configuration after defaults are applied.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	LogLevel   string       `yaml:"log_level"`
	ClearColor string       `yaml:"clear_color"`
	// Display overrides $DISPLAY when non-empty.
	Display string `yaml:"display,omitempty"`
}

// ValidationError points at the config key that failed validation and,
// when known, the file position that set it.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  window.DefaultTitle,
			Width:  window.DefaultWidth,
			Height: window.DefaultHeight,
		},
		LogLevel:   DefaultLogLevel,
		ClearColor: DefaultClearColor,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Title) == "" {
		return &ValidationError{Path: "window.title", Err: fmt.Errorf("title must not be empty")}
	}
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.Window.X != nil && *c.Window.X == window.PositionUndefined {
		return &ValidationError{Path: "window.x", Err: fmt.Errorf("x is reserved; omit it to let the window system choose")}
	}
	if c.Window.Y != nil && *c.Window.Y == window.PositionUndefined {
		return &ValidationError{Path: "window.y", Err: fmt.Errorf("y is reserved; omit it to let the window system choose")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return &ValidationError{Path: "clear_color", Err: err}
	}
	return nil
}

// Properties converts the window section into construction properties.
func (c *Config) Properties() window.Properties {
	props := window.Properties{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		X:      window.PositionUndefined,
		Y:      window.PositionUndefined,
	}
	if c.Window.X != nil {
		props.X = *c.Window.X
	}
	if c.Window.Y != nil {
		props.Y = *c.Window.Y
	}
	return props
}

// SlogLevel returns the configured level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Clear returns the configured clear colour, falling back to black.
func (c *Config) Clear() color.RGBA {
	rgba, err := ParseColor(c.ClearColor)
	if err != nil {
		return colornames.Black
	}
	return rgba
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ParseLogLevel accepts debug, info, warn (or warning) and error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
}

// ParseColor accepts an SVG colour name ("cornflowerblue") or a hex triplet
// ("#6495ed" or "#69e").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("colour is empty")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if rgba, ok := colornames.Map[s]; ok {
		return rgba, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("hex colour must have 3 or 6 digits")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
