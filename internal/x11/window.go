package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const eventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange |
	xproto.EventMaskPropertyChange |
	xproto.EventMaskExposure

// WindowConfig describes a top-level window to create.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	X          int
	Y          int
	Positioned bool
}

// Window is a mapped top-level window with a client-side framebuffer.
type Window struct {
	conn *Connection
	win  *xwindow.Window
	gc   xproto.Gcontext

	x, y          int
	width, height int
	iconified     bool
	maximized     bool
	keys          keyTable

	surface *image.RGBA
	scratch []byte
}

// CreateWindow creates, titles and maps a window. When cfg.Positioned is
// false the window is centred on the monitor under the pointer.
func (c *Connection) CreateWindow(cfg WindowConfig) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	x, y := cfg.X, cfg.Y
	if !cfg.Positioned {
		x, y = c.defaultPlacement(cfg.Width, cfg.Height)
	}

	xw, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	// Value list order follows the bit positions of the mask: CwBackPixel
	// comes before CwEventMask.
	err = xw.CreateChecked(c.Root, x, y, cfg.Width, cfg.Height,
		xproto.CwBackPixel|xproto.CwEventMask,
		c.XUtil.Screen().BlackPixel, uint32(eventMask))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w := &Window{
		conn:   c,
		win:    xw,
		x:      x,
		y:      y,
		width:  cfg.Width,
		height: cfg.Height,
		keys:   make(keyTable),
	}
	w.surface = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	if err := ewmh.WmNameSet(c.XUtil, xw.Id, cfg.Title); err != nil {
		c.logger.Debug("failed to set _NET_WM_NAME", "window", xw.Id, "error", err)
	}
	if err := icccm.WmNameSet(c.XUtil, xw.Id, cfg.Title); err != nil {
		c.logger.Debug("failed to set WM_NAME", "window", xw.Id, "error", err)
	}
	if err := icccm.WmProtocolsSet(c.XUtil, xw.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		xw.Destroy()
		return nil, fmt.Errorf("failed to register WM_DELETE_WINDOW: %w", err)
	}

	// Ask the window manager to honour the requested placement.
	hints := &icccm.NormalHints{
		Flags: icccm.SizeHintPPosition,
		X:     x,
		Y:     y,
	}
	if cfg.Positioned {
		hints.Flags = icccm.SizeHintUSPosition
	}
	if err := icccm.WmNormalHintsSet(c.XUtil, xw.Id, hints); err != nil {
		c.logger.Debug("failed to set WM_NORMAL_HINTS", "window", xw.Id, "error", err)
	}

	gc, err := xproto.NewGcontextId(c.XUtil.Conn())
	if err != nil {
		xw.Destroy()
		return nil, fmt.Errorf("failed to allocate graphics context: %w", err)
	}
	if err := xproto.CreateGCChecked(c.XUtil.Conn(), gc, xproto.Drawable(xw.Id), 0, nil).Check(); err != nil {
		xw.Destroy()
		return nil, fmt.Errorf("failed to create graphics context: %w", err)
	}
	w.gc = gc

	xw.Map()
	c.windows[xw.Id] = w
	return w, nil
}

// ID returns the X window id.
func (w *Window) ID() xproto.Window {
	return w.win.Id
}

// Position returns the last known root-relative position.
func (w *Window) Position() (int, int) {
	return w.x, w.y
}

// Size returns the last known size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Move requests a new position. The window manager may ignore or adjust it;
// the confirmed position arrives as a ConfigureNotify.
func (w *Window) Move(x, y int) {
	w.win.Move(x, y)
}

// Surface returns the client-side framebuffer uploaded by Present.
func (w *Window) Surface() *image.RGBA {
	return w.surface
}

// CursorPos returns the pointer position relative to the window origin.
func (w *Window) CursorPos() (float64, float64) {
	reply, err := xproto.QueryPointer(w.conn.XUtil.Conn(), w.win.Id).Reply()
	if err != nil {
		return 0, 0
	}
	return float64(reply.WinX), float64(reply.WinY)
}

// Destroy frees the graphics context and destroys the window. It is safe to
// call more than once.
func (w *Window) Destroy() {
	if _, ok := w.conn.windows[w.win.Id]; !ok {
		return
	}
	delete(w.conn.windows, w.win.Id)
	if w.gc != 0 {
		xproto.FreeGC(w.conn.XUtil.Conn(), w.gc)
		w.gc = 0
	}
	w.win.Destroy()
}

// rootPosition asks the server where the window's origin sits on the root
// window. Reparenting window managers report ConfigureNotify coordinates
// relative to their frame, so the event position cannot be used directly.
func (w *Window) rootPosition() (int, int, error) {
	reply, err := xproto.TranslateCoordinates(w.conn.XUtil.Conn(), w.win.Id, w.conn.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.DstX), int(reply.DstY), nil
}

func (w *Window) resize(width, height int) {
	w.width, w.height = width, height
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.surface = image.NewRGBA(image.Rect(0, 0, width, height))
}
