package input

// IntentType classifies a parsed input event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentMovePress
	IntentMoveRelease
	IntentCommand
	IntentMouseMove
	IntentMousePress
	IntentMouseRelease
	IntentMouseScroll
	IntentResize
	IntentQuit
)

// Intent is a semantic input event produced by the Machine from raw
// terminal events
type Intent struct {
	Type    IntentType
	Key     MoveKey
	Command CommandOp

	// Mouse fields, raw window coordinates
	MouseX, MouseY int
	Button         MouseButton
	Scroll         float64
	Shift          bool
}
