package interact

// Mode is the mouse interaction mode
type Mode uint8

const (
	ModeLook Mode = iota
	ModeGrab

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeLook:
		return "LOOK"
	case ModeGrab:
		return "GRAB"
	}
	return "unknown"
}

// Next returns the following mode, wrapping over the closed enumeration
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}
