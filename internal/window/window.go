// Package window owns one native window, mirrors its geometry and routes
// backend callbacks to listeners registered per event type.
//
// A Window is single-threaded: construction, every method and all listener
// invocations must happen on the goroutine that calls Poll.
package window

import (
	"errors"
	"fmt"
	"image/draw"
	"log/slog"
	"math"

	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/platform"
)

// PositionUndefined lets the backend choose the window position.
const PositionUndefined = math.MinInt32

// Defaults applied by DefaultProperties and to non-positive sizes.
const (
	DefaultTitle  = "mono::window"
	DefaultWidth  = 738
	DefaultHeight = 480
)

var (
	// ErrBackendInit is returned when the window system cannot be initialized.
	ErrBackendInit = errors.New("failed to initialize window system")
	// ErrCreation is returned when the native window cannot be created.
	ErrCreation = errors.New("failed to create window")
)

// Properties configure a window at construction time.
type Properties struct {
	Title  string
	Width  int
	Height int
	X      int
	Y      int
}

// DefaultProperties returns a 738x480 window placed by the backend.
func DefaultProperties() Properties {
	return Properties{
		Title:  DefaultTitle,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		X:      PositionUndefined,
		Y:      PositionUndefined,
	}
}

func (p Properties) withDefaults() Properties {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	return p
}

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger for window lifecycle diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Window) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Window is one native window plus its listener registry.
//
// The mutable state lives behind a pointer that is bound to the native
// handle as user data, so the Window value itself may be copied or moved.
type Window struct {
	backend platform.Backend
	handle  platform.Handle
	data    *windowData
	keys    map[input.Key]*input.KeyState
	logger  *slog.Logger
	closed  bool
}

// windowData is the state the backend callbacks reach through the handle's
// user data.
type windowData struct {
	title        string
	width        int
	height       int
	bufferWidth  int
	bufferHeight int
	xpos         int
	ypos         int
	listeners    registry
}

// New initializes the backend if needed and creates a window.
func New(backend platform.Backend, props Properties, opts ...Option) (*Window, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrBackendInit)
	}
	props = props.withDefaults()

	w := &Window{
		backend: backend,
		keys:    make(map[input.Key]*input.KeyState),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendInit, err)
	}

	positioned := props.X != PositionUndefined && props.Y != PositionUndefined
	cfg := platform.WindowConfig{
		Title:      props.Title,
		Width:      props.Width,
		Height:     props.Height,
		Positioned: positioned,
	}
	if positioned {
		cfg.X, cfg.Y = props.X, props.Y
	}

	h, err := backend.CreateWindow(cfg)
	if err != nil {
		backend.Terminate()
		return nil, fmt.Errorf("%w %q: %w", ErrCreation, props.Title, err)
	}
	w.handle = h

	d := &windowData{
		title:  props.Title,
		width:  props.Width,
		height: props.Height,
	}

	d.xpos, d.ypos = backend.WindowPos(h)
	if props.X != PositionUndefined {
		d.xpos = props.X
	}
	if props.Y != PositionUndefined {
		d.ypos = props.Y
	}
	// Only one axis given: the other comes from the backend's placement.
	if !positioned && (props.X != PositionUndefined || props.Y != PositionUndefined) {
		backend.SetWindowPos(h, d.xpos, d.ypos)
	}

	// The framebuffer may be larger than the logical size under scaling.
	d.bufferWidth, d.bufferHeight = backend.FramebufferSize(h)
	if d.bufferWidth <= 0 || d.bufferHeight <= 0 {
		d.bufferWidth, d.bufferHeight = d.width, d.height
	}

	w.data = d
	backend.SetUserData(h, d)
	backend.SetCallbacks(h, trampolines(backend))

	w.logger.Debug("window created",
		"title", d.title,
		"width", d.width,
		"height", d.height,
		"buffer_width", d.bufferWidth,
		"buffer_height", d.bufferHeight)
	return w, nil
}

// Close destroys the native window and releases the window system. Only the
// first call has an effect.
func (w *Window) Close() error {
	if w == nil || w.closed {
		return nil
	}
	w.closed = true

	w.backend.SetCallbacks(w.handle, platform.Callbacks{})
	w.backend.SetUserData(w.handle, nil)
	w.backend.DestroyWindow(w.handle)
	w.backend.Terminate()

	w.logger.Debug("window closed", "title", w.data.title)
	return nil
}

// ShouldClose reports whether a close was requested. It queries the backend
// and never resets once true.
func (w *Window) ShouldClose() bool {
	if w.closed {
		return true
	}
	return w.backend.ShouldClose(w.handle)
}

// Title returns the title the window was created with.
func (w *Window) Title() string { return w.data.title }

// Width and Height return the logical size last reported by the backend.
func (w *Window) Width() int  { return w.data.width }
func (w *Window) Height() int { return w.data.height }

// BufferWidth and BufferHeight return the framebuffer size in pixels, which
// may exceed the logical size under scaling. New never leaves them zero.
func (w *Window) BufferWidth() int  { return w.data.bufferWidth }
func (w *Window) BufferHeight() int { return w.data.bufferHeight }

// XPos and YPos return the position last confirmed by the backend.
func (w *Window) XPos() int { return w.data.xpos }
func (w *Window) YPos() int { return w.data.ypos }

// Handle returns the native handle.
func (w *Window) Handle() platform.Handle {
	return w.handle
}

// Time returns seconds since the window system was initialized.
func (w *Window) Time() float64 {
	return w.backend.Time()
}

// MousePos returns the cursor position relative to the window origin.
func (w *Window) MousePos() (x, y float64) {
	if w.closed {
		return 0, 0
	}
	return w.backend.CursorPos(w.handle)
}

// SetPosition asks the backend to move the window. XPos and YPos keep their
// old values until the backend confirms the move during a later Poll; a
// rejected position is silently ignored.
func (w *Window) SetPosition(x, y int) {
	if w.closed {
		return
	}
	w.backend.SetWindowPos(w.handle, x, y)
}

// Surface returns the framebuffer presented by Swap.
func (w *Window) Surface() draw.Image {
	if w.closed {
		return nil
	}
	return w.backend.Surface(w.handle)
}

// Poll delivers every pending backend event to the registered listeners and
// then samples each key observer.
func (w *Window) Poll() {
	if w.closed {
		return
	}
	w.backend.PollEvents()
	if w.closed {
		// A listener closed the window.
		return
	}
	for code, key := range w.keys {
		key.Update(w.backend.Key(w.handle, code))
	}
}

// Swap presents the framebuffer. Any blocking is the backend's.
func (w *Window) Swap() {
	if w.closed {
		return
	}
	w.backend.SwapBuffers(w.handle)
}

// String renders a single-line description used in logs.
func (w *Window) String() string {
	d := w.data
	return fmt.Sprintf("mono::window { title: \"%s\", width: %d, height: %d, buffer_width: %d, buffer_height: %d }",
		d.title, d.width, d.height, d.bufferWidth, d.bufferHeight)
}
