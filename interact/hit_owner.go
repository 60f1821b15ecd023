package interact

import (
	"github.com/lixenwraith/scene-pilot/physics"
)

// OwnerKind tags the result of hit-owner resolution
type OwnerKind uint8

const (
	OwnerUnresolved OwnerKind = iota
	OwnerBody
	OwnerLink
)

// HitOwner identifies which body (and optionally which link) owns a ray-hit
// object id
type HitOwner struct {
	Kind   OwnerKind
	BodyID int
	LinkID int
}

// ResolveHitOwner maps an object id to its owning body.
// Resolution order: free rigid body by id, articulated base by id, then a
// scan of every articulated body's link-id table.
func ResolveHitOwner(eng Engine, objectID int) HitOwner {
	unresolved := HitOwner{Kind: OwnerUnresolved, BodyID: physics.NoID, LinkID: physics.NoID}
	if objectID < 0 {
		return unresolved
	}

	if rb := eng.RigidByID(objectID); rb != nil {
		return HitOwner{Kind: OwnerBody, BodyID: rb.ID, LinkID: physics.NoID}
	}
	if ab := eng.ArticulatedByID(objectID); ab != nil {
		return HitOwner{Kind: OwnerBody, BodyID: ab.ID, LinkID: physics.NoID}
	}
	for _, ab := range eng.Articulated() {
		if linkIndex, ok := ab.LinkObjectIDs[objectID]; ok {
			return HitOwner{Kind: OwnerLink, BodyID: ab.ID, LinkID: linkIndex}
		}
	}
	return unresolved
}
