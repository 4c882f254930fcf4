package x11

import (
	"github.com/1broseidon/mono/internal/input"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

type keysymEntry struct {
	key input.Key
	sym uint32
}

var namedKeysyms = []keysymEntry{
	{input.KeySpace, 0x0020},
	{input.KeyApostrophe, 0x0027},
	{input.KeyComma, 0x002c},
	{input.KeyMinus, 0x002d},
	{input.KeyPeriod, 0x002e},
	{input.KeySlash, 0x002f},
	{input.KeySemicolon, 0x003b},
	{input.KeyEqual, 0x003d},
	{input.KeyLeftBracket, 0x005b},
	{input.KeyBackslash, 0x005c},
	{input.KeyRightBracket, 0x005d},
	{input.KeyGraveAccent, 0x0060},
	{input.KeyEscape, 0xff1b},
	{input.KeyEnter, 0xff0d},
	{input.KeyTab, 0xff09},
	{input.KeyBackspace, 0xff08},
	{input.KeyInsert, 0xff63},
	{input.KeyDelete, 0xffff},
	{input.KeyRight, 0xff53},
	{input.KeyLeft, 0xff51},
	{input.KeyDown, 0xff54},
	{input.KeyUp, 0xff52},
	{input.KeyPageUp, 0xff55},
	{input.KeyPageDown, 0xff56},
	{input.KeyHome, 0xff50},
	{input.KeyEnd, 0xff57},
	{input.KeyCapsLock, 0xffe5},
	{input.KeyScrollLock, 0xff14},
	{input.KeyNumLock, 0xff7f},
	{input.KeyPrintScreen, 0xff61},
	{input.KeyPause, 0xff13},
	{input.KeyKPEnter, 0xff8d},
	{input.KeyLeftShift, 0xffe1},
	{input.KeyLeftControl, 0xffe3},
	{input.KeyLeftAlt, 0xffe9},
	{input.KeyLeftSuper, 0xffeb},
	{input.KeyRightShift, 0xffe2},
	{input.KeyRightControl, 0xffe4},
	{input.KeyRightAlt, 0xffea},
	{input.KeyRightSuper, 0xffec},
	{input.KeyMenu, 0xff67},
}

var keyBySym = make(map[uint32]input.Key)

func init() {
	for _, e := range namedKeysyms {
		keyBySym[e.sym] = e.key
	}
	for i := 0; i < 26; i++ {
		keyBySym[uint32('a'+i)] = input.KeyA + input.Key(i)
		keyBySym[uint32('A'+i)] = input.KeyA + input.Key(i)
	}
	for i := 0; i < 10; i++ {
		keyBySym[uint32('0'+i)] = input.Key0 + input.Key(i)
	}
	for i := 0; i < 12; i++ {
		keyBySym[0xffbe+uint32(i)] = input.KeyF1 + input.Key(i)
	}
}

// KeyFromKeysym maps an X keysym to a key code.
func KeyFromKeysym(sym uint32) input.Key {
	if key, ok := keyBySym[sym]; ok {
		return key
	}
	return input.KeyUnknown
}

// ModsFromState converts an X event modifier mask.
func ModsFromState(state uint16) input.Mod {
	var mods input.Mod
	if state&xproto.ModMaskShift != 0 {
		mods |= input.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		mods |= input.ModControl
	}
	if state&xproto.ModMask1 != 0 {
		mods |= input.ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		mods |= input.ModSuper
	}
	if state&xproto.ModMaskLock != 0 {
		mods |= input.ModCapsLock
	}
	if state&xproto.ModMask2 != 0 {
		mods |= input.ModNumLock
	}
	return mods
}

// RuneFromKeysym returns the character a keysym types, if any. Latin-1
// keysyms equal their code point; Unicode keysyms carry it with 0x01000000
// set.
func RuneFromKeysym(sym uint32) (rune, bool) {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym), true
	case sym >= 0x01000100 && sym <= 0x0110ffff:
		return rune(sym - 0x01000000), true
	default:
		return 0, false
	}
}

// translateKey resolves a keycode into a key code plus the character it
// types under the given modifier state.
func (c *Connection) translateKey(keycode xproto.Keycode, state uint16) (input.Key, rune, bool) {
	base := keybind.KeysymGet(c.XUtil, keycode, 0)
	key := KeyFromKeysym(uint32(base))

	column := byte(0)
	if state&xproto.ModMaskShift != 0 {
		column = 1
	}
	typed := keybind.KeysymGet(c.XUtil, keycode, column)
	if typed == 0 {
		typed = base
	}
	r, ok := RuneFromKeysym(uint32(typed))
	if ok && state&xproto.ModMaskLock != 0 && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return key, r, ok
}
