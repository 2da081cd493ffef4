package core

// Input tracks keyboard state as observed through key events. It backs
// the KeyDown callback's view of the keyboard; the facade's KeyIsDown
// deliberately bypasses it and asks the window directly.
type Input struct {
	lastKey Key
	held    map[Key]bool
}

func NewInput() *Input { return &Input{held: map[Key]bool{}} }

func (in *Input) press(k Key) {
	in.lastKey = k
	in.held[k] = true
}

func (in *Input) release(k Key) {
	in.lastKey = k
	delete(in.held, k)
}

// LastKey returns the most recently observed key transition, down or up.
func (in *Input) LastKey() Key { return in.lastKey }

// IsHeld reports whether k is tracked as currently held.
func (in *Input) IsHeld(k Key) bool { return in.held[k] }

// Held returns a snapshot of all keys currently held down.
func (in *Input) Held() []Key {
	out := make([]Key, 0, len(in.held))
	for k := range in.held {
		out = append(out, k)
	}
	return out
}
