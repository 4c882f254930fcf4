package x11

import (
	"github.com/1broseidon/mono/internal/input"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Handler receives translated window events from Pump.
type Handler interface {
	HandleSize(win xproto.Window, width, height int)
	HandlePos(win xproto.Window, x, y int)
	HandleFocus(win xproto.Window, focused bool)
	HandleIconify(win xproto.Window, iconified bool)
	HandleMaximize(win xproto.Window, maximized bool)
	HandleClose(win xproto.Window)
	HandleCursorPos(win xproto.Window, x, y float64)
	HandleCursorEnter(win xproto.Window, entered bool)
	HandleButton(win xproto.Window, button input.MouseButton, action input.Action, mods input.Mod)
	HandleScroll(win xproto.Window, xoffset, yoffset float64)
	HandleKey(win xproto.Window, key input.Key, scancode int, action input.Action, mods input.Mod)
	HandleChar(win xproto.Window, r rune)
}

// Pump drains every event already received from the server and reports it
// to h on the calling goroutine. It never blocks waiting for new events.
func (c *Connection) Pump(h Handler) {
	for {
		ev := c.nextEvent()
		if ev == nil {
			return
		}
		c.dispatch(ev, h)
	}
}

func (c *Connection) nextEvent() xgb.Event {
	if c.deferred != nil {
		ev := c.deferred
		c.deferred = nil
		return ev
	}
	return c.pollEvent()
}

func (c *Connection) peekEvent() xgb.Event {
	if c.deferred == nil {
		c.deferred = c.pollEvent()
	}
	return c.deferred
}

func (c *Connection) pollEvent() xgb.Event {
	for {
		ev, err := c.XUtil.Conn().PollForEvent()
		if err != nil {
			c.logger.Debug("x11 protocol error", "error", err)
			continue
		}
		return ev
	}
}

func (c *Connection) dispatch(ev xgb.Event, h Handler) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		w, ok := c.windows[e.Window]
		if !ok {
			return
		}
		if int(e.Width) != w.width || int(e.Height) != w.height {
			w.resize(int(e.Width), int(e.Height))
			h.HandleSize(e.Window, w.width, w.height)
		}
		x, y, err := w.rootPosition()
		if err != nil {
			return
		}
		if x != w.x || y != w.y {
			w.x, w.y = x, y
			h.HandlePos(e.Window, x, y)
		}

	case xproto.KeyPressEvent:
		c.keyPress(e, false, h)

	case xproto.KeyReleaseEvent:
		w, ok := c.windows[e.Event]
		if !ok {
			return
		}
		// Auto-repeat arrives as a release immediately followed by a press
		// with the same keycode and timestamp.
		if next, ok := c.peekEvent().(xproto.KeyPressEvent); ok &&
			next.Detail == e.Detail && next.Time == e.Time && next.Event == e.Event {
			c.deferred = nil
			c.keyPress(next, true, h)
			return
		}
		key, _, _ := c.translateKey(e.Detail, e.State)
		w.keys.release(key)
		h.HandleKey(e.Event, key, int(e.Detail), input.Release, ModsFromState(e.State))

	case xproto.ButtonPressEvent:
		if _, ok := c.windows[e.Event]; !ok {
			return
		}
		if dx, dy, ok := scrollOffset(byte(e.Detail)); ok {
			h.HandleScroll(e.Event, dx, dy)
			return
		}
		h.HandleButton(e.Event, buttonFromDetail(byte(e.Detail)), input.Press, ModsFromState(e.State))

	case xproto.ButtonReleaseEvent:
		if _, ok := c.windows[e.Event]; !ok {
			return
		}
		if _, _, ok := scrollOffset(byte(e.Detail)); ok {
			return
		}
		h.HandleButton(e.Event, buttonFromDetail(byte(e.Detail)), input.Release, ModsFromState(e.State))

	case xproto.MotionNotifyEvent:
		if _, ok := c.windows[e.Event]; ok {
			h.HandleCursorPos(e.Event, float64(e.EventX), float64(e.EventY))
		}

	case xproto.EnterNotifyEvent:
		if _, ok := c.windows[e.Event]; ok {
			h.HandleCursorEnter(e.Event, true)
		}

	case xproto.LeaveNotifyEvent:
		if _, ok := c.windows[e.Event]; ok {
			h.HandleCursorEnter(e.Event, false)
		}

	case xproto.FocusInEvent:
		if _, ok := c.windows[e.Event]; ok && !grabFocusMode(e.Mode) {
			h.HandleFocus(e.Event, true)
		}

	case xproto.FocusOutEvent:
		w, ok := c.windows[e.Event]
		if !ok || grabFocusMode(e.Mode) {
			return
		}
		h.HandleFocus(e.Event, false)
		// Releases for keys still held would go to the newly focused client.
		for _, k := range w.keys.drain() {
			h.HandleKey(e.Event, k.key, k.scancode, input.Release, 0)
		}

	case xproto.ClientMessageEvent:
		if _, ok := c.windows[e.Window]; !ok {
			return
		}
		if e.Type == c.atoms.wmProtocols && e.Format == 32 &&
			len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == c.atoms.wmDeleteWindow {
			h.HandleClose(e.Window)
		}

	case xproto.MapNotifyEvent:
		if w, ok := c.windows[e.Window]; ok && w.iconified {
			w.iconified = false
			h.HandleIconify(e.Window, false)
		}

	case xproto.UnmapNotifyEvent:
		if w, ok := c.windows[e.Window]; ok && !w.iconified {
			w.iconified = true
			h.HandleIconify(e.Window, true)
		}

	case xproto.PropertyNotifyEvent:
		w, ok := c.windows[e.Window]
		if !ok || e.Atom != c.atoms.netWmState {
			return
		}
		states, err := ewmh.WmStateGet(c.XUtil, e.Window)
		if err != nil {
			return
		}
		if maximized := isMaximized(states); maximized != w.maximized {
			w.maximized = maximized
			h.HandleMaximize(e.Window, maximized)
		}

	case xproto.DestroyNotifyEvent:
		// Only windows destroyed behind our back are still registered.
		if _, ok := c.windows[e.Window]; ok {
			h.HandleClose(e.Window)
		}
	}
}

func (c *Connection) keyPress(e xproto.KeyPressEvent, repeat bool, h Handler) {
	w, ok := c.windows[e.Event]
	if !ok {
		return
	}
	key, r, typed := c.translateKey(e.Detail, e.State)
	w.keys.press(key, int(e.Detail))
	action := input.Press
	if repeat {
		action = input.Repeat
	}
	mods := ModsFromState(e.State)
	h.HandleKey(e.Event, key, int(e.Detail), action, mods)
	if typed && mods&(input.ModControl|input.ModAlt|input.ModSuper) == 0 {
		h.HandleChar(e.Event, r)
	}
}

// scrollOffset maps the wheel pseudo-buttons 4-7.
func scrollOffset(detail byte) (float64, float64, bool) {
	switch detail {
	case 4:
		return 0, 1, true
	case 5:
		return 0, -1, true
	case 6:
		return 1, 0, true
	case 7:
		return -1, 0, true
	}
	return 0, 0, false
}

func buttonFromDetail(detail byte) input.MouseButton {
	switch detail {
	case 1:
		return input.MouseButtonLeft
	case 2:
		return input.MouseButtonMiddle
	case 3:
		return input.MouseButtonRight
	}
	// Extra buttons start at 8, after the four wheel buttons.
	return input.MouseButton(int(detail) - 5)
}

func grabFocusMode(mode byte) bool {
	return mode == xproto.NotifyModeGrab || mode == xproto.NotifyModeUngrab
}

func isMaximized(states []string) bool {
	var horz, vert bool
	for _, s := range states {
		switch s {
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			horz = true
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			vert = true
		}
	}
	return horz && vert
}
