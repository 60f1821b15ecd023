package interact

import (
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Engine is the physics collaborator surface the controller consumes.
// *physics.World satisfies it; tests substitute fakes.
type Engine interface {
	CastRay(ray vmath.Ray) (physics.Hit, bool)
	CreateConstraint(spec physics.ConstraintSpec) int
	UpdateConstraint(id int, spec physics.ConstraintSpec)
	DestroyConstraint(id int)
	RigidByID(id int) *physics.RigidBody
	ArticulatedByID(id int) *physics.ArticulatedBody
	Articulated() []*physics.ArticulatedBody
}

// Surface reports display geometry for mouse-coordinate rescaling.
// Framebuffer and window sizes differ on high-density displays.
type Surface interface {
	FramebufferSize() (int, int)
	WindowSize() (int, int)
}

// Cues is the optional audio feedback collaborator
type Cues interface {
	Pick()
	Release()
	ModeCycle()
}
