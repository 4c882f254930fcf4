package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a keyboard key code. Values follow the GLFW key table so codes stay
// stable across backends.
type Key int32

const (
	KeyUnknown Key = -1

	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyKPEnter      Key = 335
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
)

var keyNames = map[Key]string{
	KeySpace: "space", KeyApostrophe: "apostrophe", KeyComma: "comma",
	KeyMinus: "minus", KeyPeriod: "period", KeySlash: "slash",
	KeySemicolon: "semicolon", KeyEqual: "equal",
	KeyLeftBracket: "left_bracket", KeyBackslash: "backslash",
	KeyRightBracket: "right_bracket", KeyGraveAccent: "grave_accent",
	KeyEscape: "escape", KeyEnter: "enter", KeyTab: "tab", KeyBackspace: "backspace",
	KeyInsert: "insert", KeyDelete: "delete", KeyRight: "right", KeyLeft: "left",
	KeyDown: "down", KeyUp: "up", KeyPageUp: "page_up", KeyPageDown: "page_down",
	KeyHome: "home", KeyEnd: "end", KeyCapsLock: "caps_lock",
	KeyScrollLock: "scroll_lock", KeyNumLock: "num_lock",
	KeyPrintScreen: "print_screen", KeyPause: "pause", KeyKPEnter: "kp_enter",
	KeyLeftShift: "left_shift", KeyLeftControl: "left_control",
	KeyLeftAlt: "left_alt", KeyLeftSuper: "left_super",
	KeyRightShift: "right_shift", KeyRightControl: "right_control",
	KeyRightAlt: "right_alt", KeyRightSuper: "right_super", KeyMenu: "menu",
}

func init() {
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = strings.ToLower(string(rune(k)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", k-KeyF1+1)
	}
}

// String returns the lowercase key name, or "key(<code>)" for unnamed codes.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int32(k))
}

// ParseKey resolves a key name as produced by Key.String.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Keys returns every named key in ascending code order.
func Keys() []Key {
	out := make([]Key, 0, len(keyNames))
	for k := range keyNames {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Action is the state transition reported for a key or mouse button.
type Action int32

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("action(%d)", int32(a))
	}
}

// Mod is a bit set of modifier keys held during an input event.
type Mod int32

const (
	ModShift    Mod = 1 << 0
	ModControl  Mod = 1 << 1
	ModAlt      Mod = 1 << 2
	ModSuper    Mod = 1 << 3
	ModCapsLock Mod = 1 << 4
	ModNumLock  Mod = 1 << 5
)

func (m Mod) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, bit := range []struct {
		mod  Mod
		name string
	}{
		{ModShift, "shift"},
		{ModControl, "control"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
		{ModCapsLock, "caps_lock"},
		{ModNumLock, "num_lock"},
	} {
		if m&bit.mod != 0 {
			parts = append(parts, bit.name)
		}
	}
	return strings.Join(parts, "|")
}

// MouseButton identifies a pointer button.
type MouseButton int32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int32(b))
	}
}
