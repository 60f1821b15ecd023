package agent

import (
	"math"

	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Agent is the controlled embodied body: a position plus a yaw-only
// orientation, carrying one or more sensors that pitch independently of
// the body.
type Agent struct {
	Pos vmath.Vec3
	Yaw float64 // radians about world Y

	Sensors []*Sensor
}

// New places an agent at the given position with a single color sensor at
// eye height
func New(pos vmath.Vec3) *Agent {
	return &Agent{
		Pos: pos,
		Sensors: []*Sensor{
			NewSensor("color_sensor", vmath.Vec3{Y: constants.AgentHeight}),
		},
	}
}

// Rotation returns the body orientation as a quaternion
func (a *Agent) Rotation() vmath.Quat {
	return vmath.QFromYaw(a.Yaw)
}

// Forward returns the body's facing direction on the ground plane
func (a *Agent) Forward() vmath.Vec3 {
	return vmath.QRotate(a.Rotation(), vmath.Vec3{Z: -1})
}

// Right returns the body's rightward direction on the ground plane
func (a *Agent) Right() vmath.Vec3 {
	return vmath.QRotate(a.Rotation(), vmath.Vec3{X: 1})
}

// Act applies one discrete actuation of the named action. Move actions
// translate the body, turn actions yaw the body, look actions pitch every
// sensor in lock-step.
func (a *Agent) Act(action Action) {
	const moveAmt = constants.MoveActuation
	lookAmt := constants.LookActuation * vmath.Deg2Rad

	switch action {
	case ActionMoveForward:
		a.Pos = vmath.V3Add(a.Pos, vmath.V3Scale(a.Forward(), moveAmt))
	case ActionMoveBackward:
		a.Pos = vmath.V3Sub(a.Pos, vmath.V3Scale(a.Forward(), moveAmt))
	case ActionMoveLeft:
		a.Pos = vmath.V3Sub(a.Pos, vmath.V3Scale(a.Right(), moveAmt))
	case ActionMoveRight:
		a.Pos = vmath.V3Add(a.Pos, vmath.V3Scale(a.Right(), moveAmt))
	case ActionMoveUp:
		a.Pos.Y += moveAmt
	case ActionMoveDown:
		a.Pos.Y -= moveAmt
	case ActionTurnLeft:
		a.Yaw += lookAmt
	case ActionTurnRight:
		a.Yaw -= lookAmt
	case ActionLookUp:
		a.PitchSensors(lookAmt)
	case ActionLookDown:
		a.PitchSensors(-lookAmt)
	}
}

// YawDelta turns the body by the given angle in radians, positive left
func (a *Agent) YawDelta(delta float64) {
	a.Yaw += delta
}

// PitchSensors pitches every attached sensor by the given angle in
// radians, positive up, clamped to the sensor pitch limit
func (a *Agent) PitchSensors(delta float64) {
	limit := constants.SensorPitchLimit * vmath.Deg2Rad
	for _, s := range a.Sensors {
		s.Pitch = vmath.Clamp(s.Pitch+delta, -limit, limit)
	}
}

// ActiveSensor returns the sensor frames are rendered through
func (a *Agent) ActiveSensor() *Sensor {
	return a.Sensors[0]
}

// NormalizedYaw returns yaw wrapped into (-pi, pi], for display
func (a *Agent) NormalizedYaw() float64 {
	yaw := math.Mod(a.Yaw, 2*math.Pi)
	if yaw > math.Pi {
		yaw -= 2 * math.Pi
	}
	if yaw <= -math.Pi {
		yaw += 2 * math.Pi
	}
	return yaw
}
