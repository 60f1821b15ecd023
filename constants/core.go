package constants

import "time"

// Loop & Timing
const (
	// FrameUpdateInterval is the render frame pacing interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SimTickRate is the fixed physics integration rate in ticks per second
	SimTickRate = 60.0

	// AgentActsPerSec is the rate at which held movement keys replay their
	// bound actions, independent of render frame rate
	AgentActsPerSec = 60.0

	// EventChannelSize buffers terminal events between the poll goroutine
	// and the control loop
	EventChannelSize = 256
)

// Input
const (
	// KeyHoldExpiry is how long a movement key stays held after its last
	// press event. Terminals report auto-repeat presses but never releases,
	// so the input machine expires keys that stopped repeating.
	KeyHoldExpiry = 500 * time.Millisecond
)
