package constants

// Agent actuation amounts, applied once per replayed action
const (
	// MoveActuation is the body translation per movement action, in meters
	MoveActuation = 0.07

	// LookActuation is the rotation per look/turn action, in degrees
	LookActuation = 0.9
)

// Agent body shape
const (
	AgentHeight = 1.5
	AgentRadius = 0.1
)

// Sensor limits
const (
	// SensorPitchLimit clamps camera pitch, in degrees
	SensorPitchLimit = 90.0

	// DefaultFOV is the vertical field of view of a fresh sensor, in degrees
	DefaultFOV = 90.0

	// MinFOV and MaxFOV bound zoom adjustments, in degrees
	MinFOV = 5.0
	MaxFOV = 120.0
)
