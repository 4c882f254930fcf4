package window

import "github.com/1broseidon/mono/internal/input"

// MakeKey returns the observer for code, creating it on first request. The
// window keeps its own reference and refreshes the observer on every Poll,
// so it stays valid however long callers hold it. Observers are never
// released before the window is.
func (w *Window) MakeKey(code input.Key) *input.KeyState {
	if key, ok := w.keys[code]; ok {
		return key
	}
	key := input.NewKeyState(code)
	w.keys[code] = key
	return key
}

// GetKey queries the backend for the instantaneous state of code,
// independently of any observer.
func (w *Window) GetKey(code input.Key) input.Action {
	if w.closed {
		return input.Release
	}
	return w.backend.Key(w.handle, code)
}
