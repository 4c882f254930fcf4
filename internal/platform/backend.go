package platform

import (
	"errors"
	"image/draw"
	"log/slog"

	"github.com/1broseidon/mono/internal/input"
)

// ErrUnsupported is returned when no native backend exists for this platform.
var ErrUnsupported = errors.New("no native windowing backend for this platform")

// Handle is a platform-neutral native window identifier.
type Handle uint32

// WindowConfig describes a native window to create.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// X and Y are only honoured when Positioned is set; otherwise the
	// window system chooses the placement.
	X          int
	Y          int
	Positioned bool
}

// Callbacks are the native callback slots a backend invokes for one window
// from inside PollEvents. Nil slots are skipped.
type Callbacks struct {
	Size            func(h Handle, width, height int)
	FramebufferSize func(h Handle, width, height int)
	Pos             func(h Handle, x, y int)
	Focus           func(h Handle, focused bool)
	Iconify         func(h Handle, iconified bool)
	Maximize        func(h Handle, maximized bool)
	ContentScale    func(h Handle, xscale, yscale float32)
	Close           func(h Handle)
	CursorPos       func(h Handle, x, y float64)
	CursorEnter     func(h Handle, entered bool)
	MouseButton     func(h Handle, button input.MouseButton, action input.Action, mods input.Mod)
	Scroll          func(h Handle, xoffset, yoffset float64)
	Key             func(h Handle, key input.Key, scancode int, action input.Action, mods input.Mod)
	Char            func(h Handle, r rune)
	Drop            func(h Handle, paths []string)
}

// Backend abstracts the native windowing and input provider. All methods
// must be called from the goroutine that owns the windows.
type Backend interface {
	// Init prepares the window system. It is idempotent.
	Init() error
	// Terminate releases the window system once no windows remain.
	Terminate()

	CreateWindow(cfg WindowConfig) (Handle, error)
	DestroyWindow(h Handle)

	// SetUserData binds one opaque value to h; UserData returns it, or nil
	// when h is unknown or destroyed.
	SetUserData(h Handle, data any)
	UserData(h Handle) any
	SetCallbacks(h Handle, cb Callbacks)

	WindowPos(h Handle) (x, y int)
	SetWindowPos(h Handle, x, y int)
	FramebufferSize(h Handle) (width, height int)
	ShouldClose(h Handle) bool
	Key(h Handle, key input.Key) input.Action
	CursorPos(h Handle) (x, y float64)
	// Surface returns the framebuffer SwapBuffers presents.
	Surface(h Handle) draw.Image

	// Time returns seconds elapsed since Init on a monotonic clock.
	Time() float64
	SwapBuffers(h Handle)
	PollEvents()
}

type options struct {
	display string
	logger  *slog.Logger
}

// Option configures a native backend.
type Option func(*options)

// WithDisplay selects the display to connect to. Empty means the
// environment default.
func WithDisplay(display string) Option {
	return func(o *options) { o.display = display }
}

// WithLogger sets the logger used for backend diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
