package physics

import (
	"github.com/lixenwraith/scene-pilot/vmath"
)

// NoID marks an unassigned or unresolved object id
const NoID = -1

// RigidBody is a free dynamic or static sphere body
type RigidBody struct {
	ID     int
	Name   string
	Pos    vmath.Vec3
	Vel    vmath.Vec3
	Orient vmath.Quat
	Mass   float64
	Radius float64
	Static bool
}

// WorldPoint transforms a point from body-local space to world space
func (b *RigidBody) WorldPoint(local vmath.Vec3) vmath.Vec3 {
	return vmath.V3Add(b.Pos, vmath.QRotate(b.Orient, local))
}

// LocalPoint transforms a world-space point into body-local space
func (b *RigidBody) LocalPoint(world vmath.Vec3) vmath.Vec3 {
	return vmath.QRotate(vmath.QConj(b.Orient), vmath.V3Sub(world, b.Pos))
}
