package main

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"time"

	"github.com/1broseidon/mono/internal/event"
	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/window"
)

// app drives one window: it clears the surface every frame and stops on a
// close request or Escape.
type app struct {
	win    *window.Window
	clear  *image.Uniform
	logger *slog.Logger
	escape *input.KeyState
	frames int
	done   bool
}

func newApp(win *window.Window, clear color.Color, logger *slog.Logger, printer *eventPrinter) *app {
	a := &app{
		win:    win,
		clear:  image.NewUniform(clear),
		logger: logger,
		escape: win.MakeKey(input.KeyEscape),
	}

	win.AddEventListener(event.WindowClose, func(event.Event) {
		a.done = true
	})
	win.AddEventListener(event.BufferResize, func(ev event.Event) {
		logger.Debug("framebuffer resized", "event", ev.String())
	})

	for _, typ := range event.Types() {
		if printer != nil {
			win.AddEventListener(typ, printer.print)
			continue
		}
		if typ == event.MouseMove {
			continue
		}
		win.AddEventListener(typ, func(ev event.Event) {
			logger.Debug("event", "type", ev.Name(), "event", ev.String())
		})
	}
	return a
}

// frame runs one iteration and reports whether the loop should continue.
func (a *app) frame() bool {
	a.win.Poll()
	if a.done || a.win.ShouldClose() || a.escape.IsClicked() {
		return false
	}
	if s := a.win.Surface(); s != nil {
		draw.Draw(s, s.Bounds(), a.clear, image.Point{}, draw.Src)
	}
	a.win.Swap()
	a.frames++
	return true
}

func (a *app) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for a.frame() {
		select {
		case <-ctx.Done():
			a.logger.Info("interrupted")
			return
		case <-ticker.C:
		}
	}
}
