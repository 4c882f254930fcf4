package platform

import (
	"errors"
	"image"
	"image/draw"

	"github.com/1broseidon/mono/internal/input"
)

// FakeBackend is an in-memory Backend for tests and headless runs. Native
// events are queued with the Fire* helpers and delivered, in order, on the
// next PollEvents, the same way a real window system reports them.
type FakeBackend struct {
	InitErr   error
	CreateErr error
	// Scale multiplies the logical size to produce the framebuffer size.
	// Zero means 1.
	Scale int
	// DefaultX and DefaultY place windows created without a position.
	DefaultX int
	DefaultY int
	// RejectPositions turns SetWindowPos into a silent no-op.
	RejectPositions bool
	// ZeroFramebuffer makes FramebufferSize report 0x0, as some window
	// systems do before a window is first shown.
	ZeroFramebuffer bool
	// Clock is returned by Time.
	Clock float64

	InitCalls      int
	TerminateCalls int
	CreateCalls    int
	DestroyCalls   int
	PollCalls      int
	SwapCalls      int

	initialized bool
	next        Handle
	windows     map[Handle]*FakeWindow
	pending     []fakeEvent
}

// FakeWindow is the native-side state of one fake window.
type FakeWindow struct {
	Config        WindowConfig
	X, Y          int
	Width, Height int
	BufferWidth   int
	BufferHeight  int
	CursorX       float64
	CursorY       float64
	Swaps         int
	Destroyed     bool
	shouldClose   bool
	keys          map[input.Key]input.Action
	data          any
	cb            Callbacks
	surface       *image.RGBA
}

type fakeEvent struct {
	h    Handle
	fire func(w *FakeWindow)
}

var _ Backend = (*FakeBackend)(nil)

// NewFakeBackend returns a fake backend with unit scale.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{windows: make(map[Handle]*FakeWindow)}
}

func (b *FakeBackend) Init() error {
	b.InitCalls++
	if b.InitErr != nil {
		return b.InitErr
	}
	if b.windows == nil {
		b.windows = make(map[Handle]*FakeWindow)
	}
	b.initialized = true
	return nil
}

func (b *FakeBackend) Terminate() {
	b.TerminateCalls++
	for _, w := range b.windows {
		if !w.Destroyed {
			return
		}
	}
	b.initialized = false
	b.pending = nil
}

// Initialized reports whether Init succeeded and no Terminate has released it.
func (b *FakeBackend) Initialized() bool {
	return b.initialized
}

func (b *FakeBackend) CreateWindow(cfg WindowConfig) (Handle, error) {
	b.CreateCalls++
	if !b.initialized {
		return 0, errors.New("fake backend not initialized")
	}
	if b.CreateErr != nil {
		return 0, b.CreateErr
	}

	b.next++
	w := &FakeWindow{
		Config: cfg,
		X:      b.DefaultX,
		Y:      b.DefaultY,
		Width:  cfg.Width,
		Height: cfg.Height,
		keys:   make(map[input.Key]input.Action),
	}
	if cfg.Positioned {
		w.X, w.Y = cfg.X, cfg.Y
	}
	w.resizeBuffer(cfg.Width*b.scale(), cfg.Height*b.scale())
	b.windows[b.next] = w
	return b.next, nil
}

func (b *FakeBackend) DestroyWindow(h Handle) {
	b.DestroyCalls++
	w, ok := b.windows[h]
	if !ok || w.Destroyed {
		return
	}
	w.Destroyed = true
	w.data = nil
	w.cb = Callbacks{}
}

func (b *FakeBackend) SetUserData(h Handle, data any) {
	if w := b.live(h); w != nil {
		w.data = data
	}
}

func (b *FakeBackend) UserData(h Handle) any {
	if w := b.live(h); w != nil {
		return w.data
	}
	return nil
}

func (b *FakeBackend) SetCallbacks(h Handle, cb Callbacks) {
	if w := b.live(h); w != nil {
		w.cb = cb
	}
}

func (b *FakeBackend) WindowPos(h Handle) (int, int) {
	if w := b.live(h); w != nil {
		return w.X, w.Y
	}
	return 0, 0
}

// SetWindowPos queues the move; the position callback fires on the next
// PollEvents.
func (b *FakeBackend) SetWindowPos(h Handle, x, y int) {
	if b.RejectPositions || b.live(h) == nil {
		return
	}
	b.FireMove(h, x, y)
}

func (b *FakeBackend) FramebufferSize(h Handle) (int, int) {
	if w := b.live(h); w != nil && !b.ZeroFramebuffer {
		return w.BufferWidth, w.BufferHeight
	}
	return 0, 0
}

func (b *FakeBackend) ShouldClose(h Handle) bool {
	if w := b.live(h); w != nil {
		return w.shouldClose
	}
	return true
}

func (b *FakeBackend) Key(h Handle, key input.Key) input.Action {
	if w := b.live(h); w != nil {
		return w.keys[key]
	}
	return input.Release
}

func (b *FakeBackend) CursorPos(h Handle) (float64, float64) {
	if w := b.live(h); w != nil {
		return w.CursorX, w.CursorY
	}
	return 0, 0
}

func (b *FakeBackend) Surface(h Handle) draw.Image {
	if w := b.live(h); w != nil {
		return w.surface
	}
	return nil
}

func (b *FakeBackend) Time() float64 {
	return b.Clock
}

func (b *FakeBackend) SwapBuffers(h Handle) {
	b.SwapCalls++
	if w := b.live(h); w != nil {
		w.Swaps++
	}
}

// PollEvents delivers every event queued before the call. Events queued by
// callbacks during delivery wait for the next PollEvents.
func (b *FakeBackend) PollEvents() {
	b.PollCalls++
	queued := b.pending
	b.pending = nil
	for _, ev := range queued {
		w := b.live(ev.h)
		if w == nil {
			continue
		}
		ev.fire(w)
	}
}

// Window returns the native state behind h, including destroyed windows.
func (b *FakeBackend) Window(h Handle) *FakeWindow {
	return b.windows[h]
}

// Pending returns the number of queued, undelivered events.
func (b *FakeBackend) Pending() int {
	return len(b.pending)
}

// SetKey changes the instantaneous key state without emitting an event.
func (b *FakeBackend) SetKey(h Handle, key input.Key, action input.Action) {
	if w := b.live(h); w != nil {
		w.keys[key] = action
	}
}

// FireResize queues a logical resize followed by the matching framebuffer
// resize.
func (b *FakeBackend) FireResize(h Handle, width, height int) {
	scale := b.scale()
	b.queue(h, func(w *FakeWindow) {
		w.Width, w.Height = width, height
		if w.cb.Size != nil {
			w.cb.Size(h, width, height)
		}
		w.resizeBuffer(width*scale, height*scale)
		if w.cb.FramebufferSize != nil {
			w.cb.FramebufferSize(h, width*scale, height*scale)
		}
	})
}

func (b *FakeBackend) FireFramebufferResize(h Handle, width, height int) {
	b.queue(h, func(w *FakeWindow) {
		w.resizeBuffer(width, height)
		if w.cb.FramebufferSize != nil {
			w.cb.FramebufferSize(h, width, height)
		}
	})
}

func (b *FakeBackend) FireMove(h Handle, x, y int) {
	b.queue(h, func(w *FakeWindow) {
		w.X, w.Y = x, y
		if w.cb.Pos != nil {
			w.cb.Pos(h, x, y)
		}
	})
}

func (b *FakeBackend) FireFocus(h Handle, focused bool) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Focus != nil {
			w.cb.Focus(h, focused)
		}
	})
}

func (b *FakeBackend) FireIconify(h Handle, iconified bool) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Iconify != nil {
			w.cb.Iconify(h, iconified)
		}
	})
}

func (b *FakeBackend) FireMaximize(h Handle, maximized bool) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Maximize != nil {
			w.cb.Maximize(h, maximized)
		}
	})
}

func (b *FakeBackend) FireContentScale(h Handle, xscale, yscale float32) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.ContentScale != nil {
			w.cb.ContentScale(h, xscale, yscale)
		}
	})
}

// FireClose queues a close request. ShouldClose latches to true when it is
// delivered.
func (b *FakeBackend) FireClose(h Handle) {
	b.queue(h, func(w *FakeWindow) {
		w.shouldClose = true
		if w.cb.Close != nil {
			w.cb.Close(h)
		}
	})
}

func (b *FakeBackend) FireCursorPos(h Handle, x, y float64) {
	b.queue(h, func(w *FakeWindow) {
		w.CursorX, w.CursorY = x, y
		if w.cb.CursorPos != nil {
			w.cb.CursorPos(h, x, y)
		}
	})
}

func (b *FakeBackend) FireCursorEnter(h Handle, entered bool) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.CursorEnter != nil {
			w.cb.CursorEnter(h, entered)
		}
	})
}

func (b *FakeBackend) FireMouseButton(h Handle, button input.MouseButton, action input.Action, mods input.Mod) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.MouseButton != nil {
			w.cb.MouseButton(h, button, action, mods)
		}
	})
}

func (b *FakeBackend) FireScroll(h Handle, xoffset, yoffset float64) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Scroll != nil {
			w.cb.Scroll(h, xoffset, yoffset)
		}
	})
}

// FireKey queues a key transition and updates the key state reported by Key
// when it is delivered.
func (b *FakeBackend) FireKey(h Handle, key input.Key, action input.Action, mods input.Mod) {
	b.queue(h, func(w *FakeWindow) {
		w.keys[key] = action
		if w.cb.Key != nil {
			w.cb.Key(h, key, int(key), action, mods)
		}
	})
}

func (b *FakeBackend) FireChar(h Handle, r rune) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Char != nil {
			w.cb.Char(h, r)
		}
	})
}

func (b *FakeBackend) FireDrop(h Handle, paths ...string) {
	b.queue(h, func(w *FakeWindow) {
		if w.cb.Drop != nil {
			w.cb.Drop(h, paths)
		}
	})
}

func (b *FakeBackend) queue(h Handle, fire func(w *FakeWindow)) {
	b.pending = append(b.pending, fakeEvent{h: h, fire: fire})
}

func (b *FakeBackend) live(h Handle) *FakeWindow {
	w, ok := b.windows[h]
	if !ok || w.Destroyed {
		return nil
	}
	return w
}

func (b *FakeBackend) scale() int {
	if b.Scale <= 0 {
		return 1
	}
	return b.Scale
}

func (w *FakeWindow) resizeBuffer(width, height int) {
	w.BufferWidth, w.BufferHeight = width, height
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.surface = image.NewRGBA(image.Rect(0, 0, width, height))
}
