package input

// KeyState observes one key across frames. It keeps the last two samples so
// callers can detect the frame a key went down.
//
// A KeyState is shared by pointer between the window that samples it and any
// number of readers. Samples are only written from the window's Poll, so
// readers see the snapshot taken by the most recent Poll.
type KeyState struct {
	code    Key
	current Action
	prev    Action
}

// NewKeyState returns a released observer for code.
func NewKeyState(code Key) *KeyState {
	return &KeyState{code: code}
}

// Code returns the observed key.
func (k *KeyState) Code() Key {
	return k.code
}

// Update records a new sample, shifting the current one into history.
func (k *KeyState) Update(action Action) {
	k.prev = k.current
	k.current = action
}

// IsPressed reports whether the key was down at the last sample.
func (k *KeyState) IsPressed() bool {
	return k.current != Release
}

// IsReleased reports whether the key was up at the last sample.
func (k *KeyState) IsReleased() bool {
	return k.current == Release
}

// IsClicked reports whether the key went down between the last two samples.
func (k *KeyState) IsClicked() bool {
	return k.current != Release && k.prev == Release
}
