// Package event defines the window and input events delivered to listeners.
package event

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/mono/internal/input"
)

// Category groups event types. Values are bit flags so a listener can test
// membership in several categories at once.
type Category uint8

const (
	CategoryNone        Category = 1 << 0
	CategoryApplication Category = 1 << 1
	CategoryWindow      Category = 1 << 2
	CategoryBuffer      Category = 1 << 3
	CategoryKeyboard    Category = 1 << 4
	CategoryMouse       Category = 1 << 5
)

// Type enumerates the event kinds a window can emit.
type Type uint32

const (
	None Type = iota
	Drop
	WindowResize
	WindowMove
	WindowFocus
	WindowIconify
	WindowMaximize
	WindowClose
	BufferResize
	ContentScale
	MouseMove
	MousePress
	MouseRelease
	MouseWheel
	MouseEnter
	MouseLeave
	KeyDown
	KeyUp
	KeyTyped
)

var typeNames = [...]string{
	None:           "none",
	Drop:           "drop",
	WindowResize:   "window_resize",
	WindowMove:     "window_move",
	WindowFocus:    "window_focus",
	WindowIconify:  "window_iconify",
	WindowMaximize: "window_maximize",
	WindowClose:    "window_close",
	BufferResize:   "buffer_resize",
	ContentScale:   "content_scale",
	MouseMove:      "mouse_move",
	MousePress:     "mouse_press",
	MouseRelease:   "mouse_release",
	MouseWheel:     "mouse_wheel",
	MouseEnter:     "mouse_enter",
	MouseLeave:     "mouse_leave",
	KeyDown:        "key_down",
	KeyUp:          "key_up",
	KeyTyped:       "key_typed",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint32(t))
}

// Types returns every event type except None.
func Types() []Type {
	out := make([]Type, 0, len(typeNames)-1)
	for t := Drop; int(t) < len(typeNames); t++ {
		out = append(out, t)
	}
	return out
}

// Event is the payload handed to listeners. Implementations are immutable
// value types.
type Event interface {
	Type() Type
	Category() Category
	Name() string
	String() string
}

// fields renders "<name> { k: v, ... }".
func fields(name string, kv ...string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" {")
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(kv[i])
		b.WriteString(": ")
		b.WriteString(kv[i+1])
	}
	b.WriteString(" }")
	return b.String()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func ftoa32(v float32) string { return strconv.FormatFloat(float64(v), 'f', -1, 32) }

func btoa(v bool) string { return strconv.FormatBool(v) }

// DropEvent reports files dropped onto the window.
type DropEvent struct {
	Paths []string
}

func (DropEvent) Type() Type         { return Drop }
func (DropEvent) Category() Category { return CategoryApplication }
func (DropEvent) Name() string       { return "drop_event" }
func (e DropEvent) String() string {
	quoted := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		quoted[i] = strconv.Quote(p)
	}
	return fields(e.Name(), "size", itoa(len(e.Paths)), "paths", "["+strings.Join(quoted, ", ")+"]")
}

// WindowResizeEvent carries the new logical window size.
type WindowResizeEvent struct {
	Width, Height int
}

func (WindowResizeEvent) Type() Type         { return WindowResize }
func (WindowResizeEvent) Category() Category { return CategoryWindow }
func (WindowResizeEvent) Name() string       { return "window_resize_event" }
func (e WindowResizeEvent) String() string {
	return fields(e.Name(), "width", itoa(e.Width), "height", itoa(e.Height))
}

// WindowMoveEvent carries the new window position in screen coordinates.
type WindowMoveEvent struct {
	X, Y int
}

func (WindowMoveEvent) Type() Type         { return WindowMove }
func (WindowMoveEvent) Category() Category { return CategoryWindow }
func (WindowMoveEvent) Name() string       { return "window_move_event" }
func (e WindowMoveEvent) String() string {
	return fields(e.Name(), "x", itoa(e.X), "y", itoa(e.Y))
}

type WindowFocusEvent struct {
	Focused bool
}

func (WindowFocusEvent) Type() Type         { return WindowFocus }
func (WindowFocusEvent) Category() Category { return CategoryWindow }
func (WindowFocusEvent) Name() string       { return "window_focus_event" }
func (e WindowFocusEvent) String() string {
	return fields(e.Name(), "focus", btoa(e.Focused))
}

type WindowIconifyEvent struct {
	Iconified bool
}

func (WindowIconifyEvent) Type() Type         { return WindowIconify }
func (WindowIconifyEvent) Category() Category { return CategoryWindow }
func (WindowIconifyEvent) Name() string       { return "window_iconify_event" }
func (e WindowIconifyEvent) String() string {
	return fields(e.Name(), "iconified", btoa(e.Iconified))
}

type WindowMaximizeEvent struct {
	Maximized bool
}

func (WindowMaximizeEvent) Type() Type         { return WindowMaximize }
func (WindowMaximizeEvent) Category() Category { return CategoryWindow }
func (WindowMaximizeEvent) Name() string       { return "window_maximize_event" }
func (e WindowMaximizeEvent) String() string {
	return fields(e.Name(), "maximized", btoa(e.Maximized))
}

// WindowCloseEvent is emitted when the user asks the window to close. The
// window's ShouldClose is already true when listeners run.
type WindowCloseEvent struct{}

func (WindowCloseEvent) Type() Type         { return WindowClose }
func (WindowCloseEvent) Category() Category { return CategoryWindow }
func (WindowCloseEvent) Name() string       { return "window_close_event" }
func (e WindowCloseEvent) String() string   { return fields(e.Name()) }

// BufferResizeEvent carries the new framebuffer size in pixels.
type BufferResizeEvent struct {
	Width, Height int
}

func (BufferResizeEvent) Type() Type         { return BufferResize }
func (BufferResizeEvent) Category() Category { return CategoryBuffer }
func (BufferResizeEvent) Name() string       { return "buffer_resize_event" }
func (e BufferResizeEvent) String() string {
	return fields(e.Name(), "width", itoa(e.Width), "height", itoa(e.Height))
}

type ContentScaleEvent struct {
	XScale, YScale float32
}

func (ContentScaleEvent) Type() Type         { return ContentScale }
func (ContentScaleEvent) Category() Category { return CategoryWindow }
func (ContentScaleEvent) Name() string       { return "content_scale_event" }
func (e ContentScaleEvent) String() string {
	return fields(e.Name(), "x", ftoa32(e.XScale), "y", ftoa32(e.YScale))
}

// MouseMoveEvent carries the cursor position relative to the window origin.
type MouseMoveEvent struct {
	X, Y float64
}

func (MouseMoveEvent) Type() Type         { return MouseMove }
func (MouseMoveEvent) Category() Category { return CategoryMouse }
func (MouseMoveEvent) Name() string       { return "mouse_move_event" }
func (e MouseMoveEvent) String() string {
	return fields(e.Name(), "x", ftoa(e.X), "y", ftoa(e.Y))
}

type MousePressEvent struct {
	Button input.MouseButton
	Mods   input.Mod
	X, Y   float64
}

func (MousePressEvent) Type() Type         { return MousePress }
func (MousePressEvent) Category() Category { return CategoryMouse }
func (MousePressEvent) Name() string       { return "mouse_press_event" }
func (e MousePressEvent) String() string {
	return fields(e.Name(), "button", e.Button.String(), "mods", e.Mods.String(), "x", ftoa(e.X), "y", ftoa(e.Y))
}

type MouseReleaseEvent struct {
	Button input.MouseButton
	Mods   input.Mod
	X, Y   float64
}

func (MouseReleaseEvent) Type() Type         { return MouseRelease }
func (MouseReleaseEvent) Category() Category { return CategoryMouse }
func (MouseReleaseEvent) Name() string       { return "mouse_release_event" }
func (e MouseReleaseEvent) String() string {
	return fields(e.Name(), "button", e.Button.String(), "mods", e.Mods.String(), "x", ftoa(e.X), "y", ftoa(e.Y))
}

// MouseWheelEvent carries scroll offsets; positive Y scrolls up.
type MouseWheelEvent struct {
	XOffset, YOffset float64
}

func (MouseWheelEvent) Type() Type         { return MouseWheel }
func (MouseWheelEvent) Category() Category { return CategoryMouse }
func (MouseWheelEvent) Name() string       { return "mouse_wheel_event" }
func (e MouseWheelEvent) String() string {
	return fields(e.Name(), "x_offset", ftoa(e.XOffset), "y_offset", ftoa(e.YOffset))
}

type MouseEnterEvent struct {
	X, Y float64
}

func (MouseEnterEvent) Type() Type         { return MouseEnter }
func (MouseEnterEvent) Category() Category { return CategoryMouse }
func (MouseEnterEvent) Name() string       { return "mouse_enter_event" }
func (e MouseEnterEvent) String() string {
	return fields(e.Name(), "x", ftoa(e.X), "y", ftoa(e.Y))
}

type MouseLeaveEvent struct {
	X, Y float64
}

func (MouseLeaveEvent) Type() Type         { return MouseLeave }
func (MouseLeaveEvent) Category() Category { return CategoryMouse }
func (MouseLeaveEvent) Name() string       { return "mouse_leave_event" }
func (e MouseLeaveEvent) String() string {
	return fields(e.Name(), "x", ftoa(e.X), "y", ftoa(e.Y))
}

// KeyDownEvent is emitted on press and on auto-repeat.
type KeyDownEvent struct {
	Key      input.Key
	Scancode int
	Mods     input.Mod
	Repeat   bool
}

func (KeyDownEvent) Type() Type         { return KeyDown }
func (KeyDownEvent) Category() Category { return CategoryKeyboard }
func (KeyDownEvent) Name() string       { return "key_down_event" }
func (e KeyDownEvent) String() string {
	return fields(e.Name(), "key", e.Key.String(), "scancode", itoa(e.Scancode), "mods", e.Mods.String(), "repeat", btoa(e.Repeat))
}

type KeyUpEvent struct {
	Key      input.Key
	Scancode int
	Mods     input.Mod
}

func (KeyUpEvent) Type() Type         { return KeyUp }
func (KeyUpEvent) Category() Category { return CategoryKeyboard }
func (KeyUpEvent) Name() string       { return "key_up_event" }
func (e KeyUpEvent) String() string {
	return fields(e.Name(), "key", e.Key.String(), "scancode", itoa(e.Scancode), "mods", e.Mods.String())
}

// KeyTypedEvent carries one character of text input.
type KeyTypedEvent struct {
	Char rune
}

func (KeyTypedEvent) Type() Type         { return KeyTyped }
func (KeyTypedEvent) Category() Category { return CategoryKeyboard }
func (KeyTypedEvent) Name() string       { return "key_typed_event" }
func (e KeyTypedEvent) String() string {
	return fields(e.Name(), "char", strconv.QuoteRune(e.Char), "code", itoa(int(e.Char)))
}
