package agent

import (
	"math"

	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Sensor is a camera mounted on the agent body. The body yaws; the sensor
// adds pitch on top.
type Sensor struct {
	Name   string
	Offset vmath.Vec3 // body-local mount point
	Pitch  float64    // radians, positive up
	FOV    float64    // vertical field of view, degrees
}

// NewSensor mounts a sensor at the given body-local offset
func NewSensor(name string, offset vmath.Vec3) *Sensor {
	return &Sensor{
		Name:   name,
		Offset: offset,
		FOV:    constants.DefaultFOV,
	}
}

// Zoom applies a multiplicative zoom factor: factors above one narrow the
// field of view. The FOV is clamped so extreme scrolling cannot flip or
// degenerate the projection.
func (s *Sensor) Zoom(factor float64) {
	if factor == 0 {
		return
	}
	s.FOV = vmath.Clamp(s.FOV/factor, constants.MinFOV, constants.MaxFOV)
}

// Camera is a sensor's world-space view at a point in time, built from the
// carrying agent's pose
type Camera struct {
	Pos    vmath.Vec3
	Orient vmath.Quat
	FOV    float64 // vertical, degrees
}

// CameraFor composes body pose and sensor pitch into a world-space camera
func (a *Agent) CameraFor(s *Sensor) Camera {
	body := a.Rotation()
	pitch := vmath.QFromAxisAngle(vmath.Vec3{X: 1}, s.Pitch)
	return Camera{
		Pos:    vmath.V3Add(a.Pos, vmath.QRotate(body, s.Offset)),
		Orient: vmath.QMul(body, pitch),
		FOV:    s.FOV,
	}
}

// Camera returns the world-space camera of the active sensor
func (a *Agent) Camera() Camera {
	return a.CameraFor(a.ActiveSensor())
}

// Unproject turns a framebuffer-space point into a world-space ray through
// that pixel. The point must already be rescaled for display density.
func (c Camera) Unproject(point vmath.Vec2, fbWidth, fbHeight float64) vmath.Ray {
	if fbWidth <= 0 || fbHeight <= 0 {
		return vmath.Ray{Origin: c.Pos, Dir: c.ForwardDir()}
	}

	// NDC in [-1, 1], Y up
	ndcX := 2*point.X/fbWidth - 1
	ndcY := 1 - 2*point.Y/fbHeight

	halfV := math.Tan(c.FOV * 0.5 * vmath.Deg2Rad)
	aspect := fbWidth / fbHeight

	local := vmath.Vec3{
		X: ndcX * halfV * aspect,
		Y: ndcY * halfV,
		Z: -1,
	}
	return vmath.Ray{
		Origin: c.Pos,
		Dir:    vmath.V3Normalize(vmath.QRotate(c.Orient, local)),
	}
}

// Project maps a world point to framebuffer coordinates.
// Returns ok=false for points behind the camera.
func (c Camera) Project(world vmath.Vec3, fbWidth, fbHeight float64) (vmath.Vec2, float64, bool) {
	local := vmath.QRotate(vmath.QConj(c.Orient), vmath.V3Sub(world, c.Pos))
	if local.Z >= -vmath.Epsilon {
		return vmath.Vec2{}, 0, false
	}

	halfV := math.Tan(c.FOV * 0.5 * vmath.Deg2Rad)
	aspect := fbWidth / fbHeight
	depth := -local.Z

	ndcX := local.X / (depth * halfV * aspect)
	ndcY := local.Y / (depth * halfV)

	return vmath.Vec2{
		X: (ndcX + 1) * 0.5 * fbWidth,
		Y: (1 - ndcY) * 0.5 * fbHeight,
	}, depth, true
}

// ForwardDir returns the camera's view direction
func (c Camera) ForwardDir() vmath.Vec3 {
	return vmath.QRotate(c.Orient, vmath.Vec3{Z: -1})
}
