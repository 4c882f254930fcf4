package config

import (
	"fmt"
	"strings"
)

// Paths lists every key Explain understands, in file order.
var Paths = []string{
	"window.title",
	"window.width",
	"window.height",
	"window.x",
	"window.y",
	"log_level",
	"clear_color",
	"display",
}

// Explain returns the effective value at a dotted path and where it came
// from. Unset window coordinates are reported as "undefined".
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "window.title":
		return cfg.Window.Title, nil
	case "window.width":
		return cfg.Window.Width, nil
	case "window.height":
		return cfg.Window.Height, nil
	case "window.x":
		return coordinate(cfg.Window.X), nil
	case "window.y":
		return coordinate(cfg.Window.Y), nil
	case "log_level":
		return cfg.LogLevel, nil
	case "clear_color":
		return cfg.ClearColor, nil
	case "display":
		return cfg.Display, nil
	}
	return nil, fmt.Errorf("unknown config path %q (known: %s)", path, strings.Join(Paths, ", "))
}

func coordinate(v *int) any {
	if v == nil {
		return "undefined"
	}
	return *v
}
