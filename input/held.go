package input

// HeldSet tracks which movement keys are currently held. A dense array over
// the closed MoveKey enumeration; press and release are the only mutations.
type HeldSet struct {
	held [MoveKeyCount]bool
}

// Press marks a key held. Idempotent.
func (h *HeldSet) Press(k MoveKey) {
	if k < MoveKeyCount {
		h.held[k] = true
	}
}

// Release marks a key no longer held. Idempotent.
func (h *HeldSet) Release(k MoveKey) {
	if k < MoveKeyCount {
		h.held[k] = false
	}
}

// IsHeld reports whether the key is currently held
func (h *HeldSet) IsHeld(k MoveKey) bool {
	return k < MoveKeyCount && h.held[k]
}

// Clear releases every key, used on scene reset
func (h *HeldSet) Clear() {
	h.held = [MoveKeyCount]bool{}
}

// Any reports whether any movement key is held
func (h *HeldSet) Any() bool {
	for _, v := range h.held {
		if v {
			return true
		}
	}
	return false
}
