package interact

import (
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Grabber owns one engine-side rigid constraint for the duration of a grab.
// At most one exists at a time; Release must run on every teardown path.
type Grabber struct {
	eng       Engine
	spec      physics.ConstraintSpec
	id        int
	released  bool
	GripDepth float64
}

// NewGrabber creates the engine constraint and takes ownership of it
func NewGrabber(eng Engine, spec physics.ConstraintSpec, gripDepth float64) *Grabber {
	return &Grabber{
		eng:       eng,
		spec:      spec,
		id:        eng.CreateConstraint(spec),
		GripDepth: gripDepth,
	}
}

// Spec returns the current constraint spec
func (g *Grabber) Spec() physics.ConstraintSpec {
	return g.spec
}

// UpdateTransform moves the anchor side of the constraint: frameB takes the
// anchor rotation and pivotB the new world grip point
func (g *Grabber) UpdateTransform(rot vmath.Quat, pivot vmath.Vec3) {
	if g.released {
		return
	}
	g.spec.FrameB = rot
	g.spec.PivotB = pivot
	g.eng.UpdateConstraint(g.id, g.spec)
}

// Release destroys the engine constraint. Idempotent.
func (g *Grabber) Release() {
	if g.released {
		return
	}
	g.released = true
	g.eng.DestroyConstraint(g.id)
}
