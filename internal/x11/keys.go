package x11

import (
	"sort"

	"github.com/1broseidon/mono/internal/input"
)

// keyTable holds the keys a window has seen go down and not yet up, with the
// keycode that pressed them. It only reflects events delivered to that
// window, so keys pressed while another client has focus never show up.
type keyTable map[input.Key]int

func (t keyTable) press(key input.Key, scancode int) {
	if key != input.KeyUnknown {
		t[key] = scancode
	}
}

func (t keyTable) release(key input.Key) {
	delete(t, key)
}

func (t keyTable) action(key input.Key) input.Action {
	if _, ok := t[key]; ok {
		return input.Press
	}
	return input.Release
}

// drain empties the table and returns the held keys in key order.
func (t keyTable) drain() []heldKey {
	held := make([]heldKey, 0, len(t))
	for key, scancode := range t {
		held = append(held, heldKey{key: key, scancode: scancode})
		delete(t, key)
	}
	sort.Slice(held, func(i, j int) bool { return held[i].key < held[j].key })
	return held
}

type heldKey struct {
	key      input.Key
	scancode int
}

// KeyAction returns the last state delivered to the window for key. Repeats
// report as Press.
func (w *Window) KeyAction(key input.Key) input.Action {
	return w.keys.action(key)
}
