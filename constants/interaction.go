package constants

// Mouse look
const (
	// LookSensitivity scales raw mouse displacement before the halving
	// applied to look deltas
	LookSensitivity = 1.0
)

// Camera zoom, factor per scroll notch. Negative scroll inverts the factor.
const (
	ZoomFactorCoarse = 1.1
	ZoomFactorFine   = 1.01
)

// Grip depth, meters per scroll notch while a grab is active
const (
	GripScrollStep      = 0.01
	GripScrollStepShift = 0.1
)

// Constraint solver
const (
	// ConstraintStiffness is the spring constant pulling the grabbed point
	// toward the anchor pivot
	ConstraintStiffness = 50.0

	// ConstraintDamping bleeds velocity from a constrained body so a grabbed
	// object settles instead of oscillating
	ConstraintDamping = 10.0

	// FixedFrameCorrection is the per-tick orientation correction fraction
	// for fixed-frame constraints
	FixedFrameCorrection = 0.3

	// ConstraintMaxVelocity caps constrained body speed so a far-flung
	// anchor cannot launch the body, in meters per second
	ConstraintMaxVelocity = 20.0
)
