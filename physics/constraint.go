package physics

import (
	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// ConstraintKind selects how strongly a rigid constraint couples frames
type ConstraintKind uint8

const (
	// PointToPoint pins the pivots together, leaving rotation about the
	// pivot free (ball joint)
	PointToPoint ConstraintKind = iota

	// Fixed pins pivots and frames, carrying the anchor's orientation into
	// the constrained object
	Fixed
)

func (k ConstraintKind) String() string {
	if k == Fixed {
		return "fixed"
	}
	return "point-to-point"
}

// ConstraintSpec describes a rigid constraint between an anchor (the
// grabbing agent) and an object or articulated link.
// ObjectID and LinkID are identity, set once at creation. Pivot and frame
// fields are re-pushed on every anchor move.
type ConstraintSpec struct {
	ObjectID int
	LinkID   int // NoID when the constraint targets a free body or a base

	// PivotA is the grip point in object-local (or link-local) space
	PivotA vmath.Vec3
	// PivotB is the anchor-side grip point in world space
	PivotB vmath.Vec3

	// FrameA is the object frame composed with the anchor rotation at
	// creation time; FrameB is the anchor's current rotation
	FrameA vmath.Quat
	FrameB vmath.Quat

	Kind ConstraintKind
}

// constraint is the engine-side instance of a spec
type constraint struct {
	id   int
	spec ConstraintSpec
}

// applyConstraint accelerates the constrained body toward the anchor pivot.
// A critically damped spring stands in for an impulse solver: stiff enough
// to track the mouse, damped enough not to oscillate.
func (w *World) applyConstraint(c *constraint, dt float64) {
	spec := c.spec

	if rb := w.RigidByID(spec.ObjectID); rb != nil {
		if rb.Static {
			return
		}
		err := vmath.V3Sub(spec.PivotB, rb.WorldPoint(spec.PivotA))
		accel := vmath.V3Sub(
			vmath.V3Scale(err, constants.ConstraintStiffness),
			vmath.V3Scale(rb.Vel, constants.ConstraintDamping),
		)
		rb.Vel = vmath.V3ClampMagnitude(
			vmath.V3Add(rb.Vel, vmath.V3Scale(accel, dt)),
			constants.ConstraintMaxVelocity,
		)

		if spec.Kind == Fixed {
			// Target orientation restores FrameA coincidence with FrameB
			target := vmath.QMul(spec.FrameB, vmath.QConj(spec.FrameA))
			rb.Orient = vmath.QNlerp(rb.Orient, target, constants.FixedFrameCorrection)
		}
		return
	}

	if ab := w.ArticulatedByID(spec.ObjectID); ab != nil {
		if ab.Static {
			return
		}
		err := vmath.V3Sub(spec.PivotB, ab.WorldPoint(spec.LinkID, spec.PivotA))
		accel := vmath.V3Sub(
			vmath.V3Scale(err, constants.ConstraintStiffness),
			vmath.V3Scale(ab.Vel, constants.ConstraintDamping),
		)
		ab.Vel = vmath.V3ClampMagnitude(
			vmath.V3Add(ab.Vel, vmath.V3Scale(accel, dt)),
			constants.ConstraintMaxVelocity,
		)

		if spec.Kind == Fixed {
			target := vmath.QMul(spec.FrameB, vmath.QConj(spec.FrameA))
			ab.Orient = vmath.QNlerp(ab.Orient, target, constants.FixedFrameCorrection)
		}
	}
}
