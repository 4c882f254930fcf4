//go:build linux

package platform

import (
	"fmt"
	"image/draw"
	"log/slog"

	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// X11Backend implements Backend on an X11 connection.
type X11Backend struct {
	display string
	logger  *slog.Logger
	conn    *x11.Connection
	windows map[Handle]*x11Record
}

type x11Record struct {
	win         *x11.Window
	data        any
	cb          Callbacks
	shouldClose bool
}

var (
	_ Backend     = (*X11Backend)(nil)
	_ x11.Handler = (*X11Backend)(nil)
)

// NewNative returns the X11 backend.
func NewNative(opts ...Option) (Backend, error) {
	return NewX11Backend(opts...), nil
}

// NewX11Backend creates an X11 backend. No connection is made until Init.
func NewX11Backend(opts ...Option) *X11Backend {
	o := buildOptions(opts)
	return &X11Backend{
		display: o.display,
		logger:  o.logger,
		windows: make(map[Handle]*x11Record),
	}
}

// Init connects to the X server on first use.
func (b *X11Backend) Init() error {
	if b.conn != nil {
		return nil
	}
	conn, err := x11.NewConnection(b.display, b.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to X11: %w", err)
	}
	b.conn = conn
	b.logger.Debug("connected to X server", "display", b.display)
	return nil
}

// Terminate disconnects once every window has been destroyed.
func (b *X11Backend) Terminate() {
	if b.conn == nil || len(b.windows) > 0 {
		return
	}
	b.conn.Close()
	b.conn = nil
	b.logger.Debug("disconnected from X server")
}

func (b *X11Backend) CreateWindow(cfg WindowConfig) (Handle, error) {
	if b.conn == nil {
		return 0, fmt.Errorf("x11 backend not initialized")
	}
	win, err := b.conn.CreateWindow(x11.WindowConfig{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		X:          cfg.X,
		Y:          cfg.Y,
		Positioned: cfg.Positioned,
	})
	if err != nil {
		return 0, err
	}
	h := Handle(win.ID())
	b.windows[h] = &x11Record{win: win}
	return h, nil
}

// DestroyWindow drops the user data and callbacks before destroying the
// native window, so nothing can be dispatched for h afterwards.
func (b *X11Backend) DestroyWindow(h Handle) {
	rec, ok := b.windows[h]
	if !ok {
		return
	}
	delete(b.windows, h)
	rec.data = nil
	rec.cb = Callbacks{}
	rec.win.Destroy()
}

func (b *X11Backend) SetUserData(h Handle, data any) {
	if rec, ok := b.windows[h]; ok {
		rec.data = data
	}
}

func (b *X11Backend) UserData(h Handle) any {
	if rec, ok := b.windows[h]; ok {
		return rec.data
	}
	return nil
}

func (b *X11Backend) SetCallbacks(h Handle, cb Callbacks) {
	if rec, ok := b.windows[h]; ok {
		rec.cb = cb
	}
}

func (b *X11Backend) WindowPos(h Handle) (int, int) {
	if rec, ok := b.windows[h]; ok {
		return rec.win.Position()
	}
	return 0, 0
}

func (b *X11Backend) SetWindowPos(h Handle, x, y int) {
	if rec, ok := b.windows[h]; ok {
		rec.win.Move(x, y)
	}
}

// FramebufferSize equals the window size: X11 has no separate backing scale.
func (b *X11Backend) FramebufferSize(h Handle) (int, int) {
	if rec, ok := b.windows[h]; ok {
		return rec.win.Size()
	}
	return 0, 0
}

func (b *X11Backend) ShouldClose(h Handle) bool {
	rec, ok := b.windows[h]
	if !ok {
		return true
	}
	return rec.shouldClose
}

// Key reports the last state delivered to h, not the server-wide keyboard.
func (b *X11Backend) Key(h Handle, key input.Key) input.Action {
	if rec, ok := b.windows[h]; ok {
		return rec.win.KeyAction(key)
	}
	return input.Release
}

func (b *X11Backend) CursorPos(h Handle) (float64, float64) {
	if rec, ok := b.windows[h]; ok {
		return rec.win.CursorPos()
	}
	return 0, 0
}

func (b *X11Backend) Surface(h Handle) draw.Image {
	if rec, ok := b.windows[h]; ok {
		return rec.win.Surface()
	}
	return nil
}

func (b *X11Backend) Time() float64 {
	if b.conn == nil {
		return 0
	}
	return b.conn.Time()
}

func (b *X11Backend) SwapBuffers(h Handle) {
	if rec, ok := b.windows[h]; ok {
		rec.win.Present()
	}
}

func (b *X11Backend) PollEvents() {
	if b.conn == nil {
		return
	}
	b.conn.Pump(b)
}

func (b *X11Backend) record(win xproto.Window) (Handle, *x11Record, bool) {
	h := Handle(win)
	rec, ok := b.windows[h]
	return h, rec, ok
}

func (b *X11Backend) HandleSize(win xproto.Window, width, height int) {
	h, rec, ok := b.record(win)
	if !ok {
		return
	}
	if rec.cb.Size != nil {
		rec.cb.Size(h, width, height)
	}
	if rec.cb.FramebufferSize != nil {
		rec.cb.FramebufferSize(h, width, height)
	}
}

func (b *X11Backend) HandlePos(win xproto.Window, x, y int) {
	if h, rec, ok := b.record(win); ok && rec.cb.Pos != nil {
		rec.cb.Pos(h, x, y)
	}
}

func (b *X11Backend) HandleFocus(win xproto.Window, focused bool) {
	if h, rec, ok := b.record(win); ok && rec.cb.Focus != nil {
		rec.cb.Focus(h, focused)
	}
}

func (b *X11Backend) HandleIconify(win xproto.Window, iconified bool) {
	if h, rec, ok := b.record(win); ok && rec.cb.Iconify != nil {
		rec.cb.Iconify(h, iconified)
	}
}

func (b *X11Backend) HandleMaximize(win xproto.Window, maximized bool) {
	if h, rec, ok := b.record(win); ok && rec.cb.Maximize != nil {
		rec.cb.Maximize(h, maximized)
	}
}

// HandleClose latches the close flag before notifying the window.
func (b *X11Backend) HandleClose(win xproto.Window) {
	h, rec, ok := b.record(win)
	if !ok {
		return
	}
	rec.shouldClose = true
	if rec.cb.Close != nil {
		rec.cb.Close(h)
	}
}

func (b *X11Backend) HandleCursorPos(win xproto.Window, x, y float64) {
	if h, rec, ok := b.record(win); ok && rec.cb.CursorPos != nil {
		rec.cb.CursorPos(h, x, y)
	}
}

func (b *X11Backend) HandleCursorEnter(win xproto.Window, entered bool) {
	if h, rec, ok := b.record(win); ok && rec.cb.CursorEnter != nil {
		rec.cb.CursorEnter(h, entered)
	}
}

func (b *X11Backend) HandleButton(win xproto.Window, button input.MouseButton, action input.Action, mods input.Mod) {
	if h, rec, ok := b.record(win); ok && rec.cb.MouseButton != nil {
		rec.cb.MouseButton(h, button, action, mods)
	}
}

func (b *X11Backend) HandleScroll(win xproto.Window, xoffset, yoffset float64) {
	if h, rec, ok := b.record(win); ok && rec.cb.Scroll != nil {
		rec.cb.Scroll(h, xoffset, yoffset)
	}
}

func (b *X11Backend) HandleKey(win xproto.Window, key input.Key, scancode int, action input.Action, mods input.Mod) {
	if h, rec, ok := b.record(win); ok && rec.cb.Key != nil {
		rec.cb.Key(h, key, scancode, action, mods)
	}
}

func (b *X11Backend) HandleChar(win xproto.Window, r rune) {
	if h, rec, ok := b.record(win); ok && rec.cb.Char != nil {
		rec.cb.Char(h, r)
	}
}
