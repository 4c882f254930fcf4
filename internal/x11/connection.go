// Package x11 drives a native X11 window through xgb and xgbutil: window
// creation, the non-blocking event pump, keyboard mapping and framebuffer
// upload.
package x11

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
)

// putImageHeader is the fixed size of a PutImage request in bytes.
const putImageHeader = 24

// Connection manages the X11 connection and the windows created on it.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	logger   *slog.Logger
	start    time.Time
	atoms    atoms
	maxPut   int
	windows  map[xproto.Window]*Window
	deferred xgb.Event
}

type atoms struct {
	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
	netWmState     xproto.Atom
}

// NewConnection connects to display (empty means $DISPLAY) and initializes
// the keyboard mapping.
func NewConnection(display string, logger *slog.Logger) (*Connection, error) {
	if logger == nil {
		logger = slog.Default()
	}

	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	// Required for keycode <-> keysym lookups.
	keybind.Initialize(xu)

	c := &Connection{
		XUtil:   xu,
		Root:    xu.RootWin(),
		logger:  logger,
		start:   time.Now(),
		windows: make(map[xproto.Window]*Window),
	}

	if err := c.internAtoms(); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	c.maxPut = int(xu.Setup().MaximumRequestLength)*4 - putImageHeader
	return c, nil
}

func (c *Connection) internAtoms() error {
	names := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &c.atoms.wmProtocols},
		{"WM_DELETE_WINDOW", &c.atoms.wmDeleteWindow},
		{"_NET_WM_STATE", &c.atoms.netWmState},
	}
	for _, n := range names {
		atom, err := xprop.Atm(c.XUtil, n.name)
		if err != nil {
			return fmt.Errorf("failed to intern atom %s: %w", n.name, err)
		}
		*n.dst = atom
	}
	return nil
}

// Time returns seconds since the connection was opened.
func (c *Connection) Time() float64 {
	return time.Since(c.start).Seconds()
}

// Close destroys any remaining windows and disconnects from the X server.
func (c *Connection) Close() {
	for _, w := range c.windows {
		w.Destroy()
	}
	c.XUtil.Conn().Close()
}
