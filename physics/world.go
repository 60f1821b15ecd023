package physics

import (
	"github.com/lixenwraith/scene-pilot/vmath"
)

// World owns every body and active constraint in the scene and advances
// them by fixed ticks. All access happens on the control goroutine.
type World struct {
	rigids      []*RigidBody
	articulated []*ArticulatedBody

	rigidByID       map[int]*RigidBody
	articulatedByID map[int]*ArticulatedBody

	constraints      map[int]*constraint
	nextObjectID     int
	nextConstraintID int

	gravity vmath.Vec3

	// groundY is the plane bodies rest on
	groundY float64
}

// NewWorld creates an empty world with standard gravity
func NewWorld() *World {
	return &World{
		rigidByID:       make(map[int]*RigidBody),
		articulatedByID: make(map[int]*ArticulatedBody),
		constraints:     make(map[int]*constraint),
		gravity:         vmath.Vec3{Y: -9.8},
	}
}

// AddRigid registers a free body, assigning its object id
func (w *World) AddRigid(body RigidBody) *RigidBody {
	body.ID = w.allocID()
	if body.Orient == (vmath.Quat{}) {
		body.Orient = vmath.QIdentity()
	}
	rb := &body
	w.rigids = append(w.rigids, rb)
	w.rigidByID[rb.ID] = rb
	return rb
}

// AddArticulated registers an articulated body, assigning object ids to the
// base and to every link and building the link-id table
func (w *World) AddArticulated(body ArticulatedBody) *ArticulatedBody {
	body.ID = w.allocID()
	if body.Orient == (vmath.Quat{}) {
		body.Orient = vmath.QIdentity()
	}
	body.LinkObjectIDs = make(map[int]int, len(body.Links))
	for i := range body.Links {
		body.Links[i].ObjectID = w.allocID()
		body.LinkObjectIDs[body.Links[i].ObjectID] = i
	}
	ab := &body
	w.articulated = append(w.articulated, ab)
	w.articulatedByID[ab.ID] = ab
	return ab
}

func (w *World) allocID() int {
	id := w.nextObjectID
	w.nextObjectID++
	return id
}

// RigidByID returns the free body owning the id, or nil
func (w *World) RigidByID(id int) *RigidBody {
	return w.rigidByID[id]
}

// ArticulatedByID returns the articulated body whose base owns the id, or nil
func (w *World) ArticulatedByID(id int) *ArticulatedBody {
	return w.articulatedByID[id]
}

// Articulated returns all articulated bodies in insertion order, for
// link-table scans
func (w *World) Articulated() []*ArticulatedBody {
	return w.articulated
}

// Rigids returns all free bodies in insertion order
func (w *World) Rigids() []*RigidBody {
	return w.rigids
}

// SetGravity replaces the gravity vector
func (w *World) SetGravity(g vmath.Vec3) {
	w.gravity = g
}

// Gravity returns the current gravity vector
func (w *World) Gravity() vmath.Vec3 {
	return w.gravity
}

// CreateConstraint instantiates a rigid constraint and returns its handle id
func (w *World) CreateConstraint(spec ConstraintSpec) int {
	id := w.nextConstraintID
	w.nextConstraintID++
	w.constraints[id] = &constraint{id: id, spec: spec}
	return id
}

// UpdateConstraint replaces the spec of an existing constraint.
// Unknown ids are ignored.
func (w *World) UpdateConstraint(id int, spec ConstraintSpec) {
	if c, ok := w.constraints[id]; ok {
		c.spec = spec
	}
}

// DestroyConstraint removes a constraint. Idempotent.
func (w *World) DestroyConstraint(id int) {
	delete(w.constraints, id)
}

// ConstraintCount reports active constraints, used by tests and the
// status line
func (w *World) ConstraintCount() int {
	return len(w.constraints)
}

// Clear removes every body and constraint and restores default gravity,
// returning the world to its pre-seed state
func (w *World) Clear() {
	w.rigids = nil
	w.articulated = nil
	w.rigidByID = make(map[int]*RigidBody)
	w.articulatedByID = make(map[int]*ArticulatedBody)
	w.constraints = make(map[int]*constraint)
	w.nextObjectID = 0
	w.nextConstraintID = 0
	w.gravity = vmath.Vec3{Y: -9.8}
}

// StepWorld advances every dynamic body by one fixed tick
func (w *World) StepWorld(dt float64) {
	for _, c := range w.constraints {
		w.applyConstraint(c, dt)
	}

	for _, rb := range w.rigids {
		if rb.Static {
			continue
		}
		w.integrate(&rb.Pos, &rb.Vel, rb.Radius, dt)
	}
	for _, ab := range w.articulated {
		if ab.Static {
			continue
		}
		w.integrate(&ab.Pos, &ab.Vel, ab.Radius, dt)
	}
}

// integrate applies gravity, advances position and resolves the ground plane
func (w *World) integrate(pos, vel *vmath.Vec3, radius, dt float64) {
	*vel = vmath.V3Add(*vel, vmath.V3Scale(w.gravity, dt))
	*pos = vmath.V3Add(*pos, vmath.V3Scale(*vel, dt))

	floor := w.groundY + radius
	if pos.Y < floor {
		pos.Y = floor
		if vel.Y < 0 {
			vel.Y = 0
		}
	}
}
