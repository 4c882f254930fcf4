package window

import (
	"github.com/1broseidon/mono/internal/event"
	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/platform"
)

// trampolines returns one adapter per native callback slot. Each recovers
// the window state from the handle's user data and hands over to it; a
// handle without state (already destroyed) is ignored.
func trampolines(b platform.Backend) platform.Callbacks {
	lookup := func(h platform.Handle) *windowData {
		d, _ := b.UserData(h).(*windowData)
		return d
	}

	return platform.Callbacks{
		Size: func(h platform.Handle, width, height int) {
			if d := lookup(h); d != nil {
				d.onSize(width, height)
			}
		},
		FramebufferSize: func(h platform.Handle, width, height int) {
			if d := lookup(h); d != nil {
				d.onFramebufferSize(width, height)
			}
		},
		Pos: func(h platform.Handle, x, y int) {
			if d := lookup(h); d != nil {
				d.onPos(x, y)
			}
		},
		Focus: func(h platform.Handle, focused bool) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.WindowFocusEvent{Focused: focused})
			}
		},
		Iconify: func(h platform.Handle, iconified bool) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.WindowIconifyEvent{Iconified: iconified})
			}
		},
		Maximize: func(h platform.Handle, maximized bool) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.WindowMaximizeEvent{Maximized: maximized})
			}
		},
		ContentScale: func(h platform.Handle, xscale, yscale float32) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.ContentScaleEvent{XScale: xscale, YScale: yscale})
			}
		},
		Close: func(h platform.Handle) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.WindowCloseEvent{})
			}
		},
		CursorPos: func(h platform.Handle, x, y float64) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.MouseMoveEvent{X: x, Y: y})
			}
		},
		CursorEnter: func(h platform.Handle, entered bool) {
			if d := lookup(h); d != nil {
				x, y := b.CursorPos(h)
				d.onCursorEnter(entered, x, y)
			}
		},
		MouseButton: func(h platform.Handle, button input.MouseButton, action input.Action, mods input.Mod) {
			if d := lookup(h); d != nil {
				x, y := b.CursorPos(h)
				d.onMouseButton(button, action, mods, x, y)
			}
		},
		Scroll: func(h platform.Handle, xoffset, yoffset float64) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.MouseWheelEvent{XOffset: xoffset, YOffset: yoffset})
			}
		},
		Key: func(h platform.Handle, key input.Key, scancode int, action input.Action, mods input.Mod) {
			if d := lookup(h); d != nil {
				d.onKey(key, scancode, action, mods)
			}
		},
		Char: func(h platform.Handle, r rune) {
			if d := lookup(h); d != nil {
				d.listeners.dispatch(event.KeyTypedEvent{Char: r})
			}
		},
		Drop: func(h platform.Handle, paths []string) {
			if d := lookup(h); d != nil {
				d.onDrop(paths)
			}
		},
	}
}

func (d *windowData) onSize(width, height int) {
	d.width, d.height = width, height
	d.listeners.dispatch(event.WindowResizeEvent{Width: width, Height: height})
}

func (d *windowData) onFramebufferSize(width, height int) {
	d.bufferWidth, d.bufferHeight = width, height
	d.listeners.dispatch(event.BufferResizeEvent{Width: width, Height: height})
}

func (d *windowData) onPos(x, y int) {
	d.xpos, d.ypos = x, y
	d.listeners.dispatch(event.WindowMoveEvent{X: x, Y: y})
}

func (d *windowData) onCursorEnter(entered bool, x, y float64) {
	if entered {
		d.listeners.dispatch(event.MouseEnterEvent{X: x, Y: y})
		return
	}
	d.listeners.dispatch(event.MouseLeaveEvent{X: x, Y: y})
}

func (d *windowData) onMouseButton(button input.MouseButton, action input.Action, mods input.Mod, x, y float64) {
	if action == input.Release {
		d.listeners.dispatch(event.MouseReleaseEvent{Button: button, Mods: mods, X: x, Y: y})
		return
	}
	d.listeners.dispatch(event.MousePressEvent{Button: button, Mods: mods, X: x, Y: y})
}

// onKey reports press and auto-repeat as KeyDown and release as KeyUp.
func (d *windowData) onKey(key input.Key, scancode int, action input.Action, mods input.Mod) {
	if action == input.Release {
		d.listeners.dispatch(event.KeyUpEvent{Key: key, Scancode: scancode, Mods: mods})
		return
	}
	d.listeners.dispatch(event.KeyDownEvent{Key: key, Scancode: scancode, Mods: mods, Repeat: action == input.Repeat})
}

func (d *windowData) onDrop(paths []string) {
	// The backend may reuse its slice; events are immutable.
	d.listeners.dispatch(event.DropEvent{Paths: append([]string(nil), paths...)})
}
