package vmath

import (
	"math"
)

// Quat is a unit quaternion representing a 3D rotation
// W is the scalar part
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity returns the identity rotation
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromAxisAngle builds a rotation of angle radians about the given axis
// The axis must be normalized
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QFromYaw builds a rotation of yaw radians about the world Y axis
func QFromYaw(yaw float64) Quat {
	return QFromAxisAngle(Vec3{Y: 1}, yaw)
}

// QMul composes rotations: result applies b first, then a
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QConj returns the conjugate, the inverse rotation for unit quaternions
func QConj(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// QNormalize renormalizes after accumulated float drift
func QNormalize(q Quat) Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate rotates vector v by quaternion q
func QRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + q.w*v)
	u := Vec3{q.X, q.Y, q.Z}
	t := V3Scale(V3Cross(u, v), 2)
	return V3Add(v, V3Add(V3Scale(t, q.W), V3Cross(u, t)))
}

// QNlerp interpolates between rotations with renormalization
// Sufficient for the small per-tick corrections used by the constraint solver
func QNlerp(a, b Quat, t float64) Quat {
	// Take the short arc
	dot := a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
	if dot < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
	}
	return QNormalize(Quat{
		W: a.W + (b.W-a.W)*t,
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	})
}
