package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/mono/internal/config"
	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/platform"
	"github.com/1broseidon/mono/internal/window"
)

func newTestApp(t *testing.T, printer *eventPrinter) (*app, *platform.FakeBackend) {
	t.Helper()
	b := platform.NewFakeBackend()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	win, err := window.New(b, window.Properties{
		Title:  "test",
		Width:  4,
		Height: 2,
		X:      window.PositionUndefined,
		Y:      window.PositionUndefined,
	}, window.WithLogger(logger))
	if err != nil {
		t.Fatalf("window.New: %v", err)
	}
	t.Cleanup(func() { win.Close() })
	return newApp(win, color.RGBA{R: 10, G: 20, B: 30, A: 255}, logger, printer), b
}

func TestAppFrameClearsAndSwaps(t *testing.T) {
	a, b := newTestApp(t, nil)

	if !a.frame() {
		t.Fatal("expected first frame to continue")
	}
	h := a.win.Handle()
	if got := b.Window(h).Swaps; got != 1 {
		t.Fatalf("expected 1 swap, got %d", got)
	}
	surface := a.win.Surface().(*image.RGBA)
	if got := surface.RGBAAt(3, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("expected cleared pixel, got %v", got)
	}
}

func TestAppStopsOnEscape(t *testing.T) {
	a, b := newTestApp(t, nil)
	h := a.win.Handle()

	b.FireKey(h, input.KeyEscape, input.Press, 0)
	if a.frame() {
		t.Fatal("expected Escape to stop the loop")
	}
	if got := b.Window(h).Swaps; got != 0 {
		t.Fatalf("expected no swap after Escape, got %d", got)
	}
}

func TestAppStopsOnClose(t *testing.T) {
	a, b := newTestApp(t, nil)

	b.FireClose(a.win.Handle())
	if a.frame() {
		t.Fatal("expected close request to stop the loop")
	}
	if !a.done {
		t.Fatal("expected close listener to mark the app done")
	}
}

func TestAppRunHonoursContext(t *testing.T) {
	a, _ := newTestApp(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.run(ctx, time.Hour)
	if a.frames != 1 {
		t.Fatalf("expected one frame before cancellation, got %d", a.frames)
	}
}

func TestEventPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	a, b := newTestApp(t, newEventPrinter(&buf, false))
	h := a.win.Handle()

	b.FireResize(h, 8, 6)
	b.FireChar(h, 'x')
	a.frame()

	want := strings.Join([]string{
		"window_resize_event { width: 8, height: 6 }",
		"buffer_resize_event { width: 8, height: 6 }",
		"key_typed_event { char: 'x', code: 120 }",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRunKeys(t *testing.T) {
	var buf bytes.Buffer
	if code := runKeys(&buf, nil); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "escape") {
		t.Fatalf("expected escape in key list, got:\n%s", buf.String())
	}
}

func TestRunKeysLooksUpNames(t *testing.T) {
	var buf bytes.Buffer
	if code := runKeys(&buf, []string{"Escape", "space"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	want := "escape           256\nspace            32\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if code := runKeys(&buf, []string{"hyper"}); code != 1 {
		t.Fatalf("expected exit 1 for unknown key, got %d", code)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for unknown key, got %q", buf.String())
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono", "config.yaml")

	written, err := initConfig(path, false)
	if err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	if written != path {
		t.Fatalf("expected %s, got %s", path, written)
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if res.File != path || *res.Config != *config.DefaultConfig() {
		t.Fatalf("expected defaults from %s, got %+v", path, res.Config)
	}

	if _, err := initConfig(path, false); err == nil {
		t.Fatal("expected existing file to be kept without --force")
	}
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := initConfig(path, true); err != nil {
		t.Fatalf("initConfig --force: %v", err)
	}
	res, err = config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Config.LogLevel != config.DefaultLogLevel {
		t.Fatalf("expected --force to restore defaults, got %q", res.Config.LogLevel)
	}
}
