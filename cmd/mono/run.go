package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/1broseidon/mono/internal/platform"
	"github.com/1broseidon/mono/internal/window"
)

const frameInterval = time.Second / 60

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mono run [--config PATH] [--title T] [--width W] [--height H] [--events]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and run until it is closed or Escape is pressed.")
		fs.PrintDefaults()
	}
	path := fs.String("config", "", "Config file path (default: ~/.config/mono/config.yaml)")
	title := fs.String("title", "", "Window title (overrides config)")
	width := fs.Int("width", 0, "Window width (overrides config)")
	height := fs.Int("height", 0, "Window height (overrides config)")
	showEvents := fs.Bool("events", false, "Print every event to stdout")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	if *title != "" {
		cfg.Window.Title = *title
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel())

	backend, err := platform.NewNative(
		platform.WithDisplay(cfg.Display),
		platform.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open window system: %v\n", err)
		return 1
	}

	win, err := window.New(backend, cfg.Properties(), window.WithLogger(logger))
	if err != nil {
		if errors.Is(err, window.ErrBackendInit) {
			fmt.Fprintf(os.Stderr, "%v (is DISPLAY set?)\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	defer win.Close()

	logger.Info("window open", "window", win.String())

	var printer *eventPrinter
	if *showEvents {
		printer = newEventPrinter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	}
	a := newApp(win, cfg.Clear(), logger, printer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.run(ctx, frameInterval)
	logger.Info("window closed", "frames", a.frames, "seconds", win.Time())
	return 0
}
