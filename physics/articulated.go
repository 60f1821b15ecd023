package physics

import (
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Link is one rigid segment of an articulated body, positioned at a fixed
// offset from the base in the base frame. Each link owns a distinct object
// id so ray hits can resolve to it.
type Link struct {
	ObjectID int
	Name     string
	Offset   vmath.Vec3
	Radius   float64
}

// ArticulatedBody is a base sphere with rigidly attached links
type ArticulatedBody struct {
	ID     int
	Name   string
	Pos    vmath.Vec3
	Vel    vmath.Vec3
	Orient vmath.Quat
	Mass   float64
	Radius float64
	Static bool

	Links []Link

	// LinkObjectIDs maps a link's object id to its index in Links
	LinkObjectIDs map[int]int
}

// LinkWorldPos returns the world-space center of the given link
func (a *ArticulatedBody) LinkWorldPos(linkIndex int) vmath.Vec3 {
	return vmath.V3Add(a.Pos, vmath.QRotate(a.Orient, a.Links[linkIndex].Offset))
}

// WorldPoint transforms a point from link-local space (or base-local space
// when linkIndex is NoID) to world space
func (a *ArticulatedBody) WorldPoint(linkIndex int, local vmath.Vec3) vmath.Vec3 {
	origin := a.Pos
	if linkIndex != NoID {
		origin = a.LinkWorldPos(linkIndex)
	}
	return vmath.V3Add(origin, vmath.QRotate(a.Orient, local))
}

// LocalPoint transforms a world-space point into link-local space (or
// base-local space when linkIndex is NoID)
func (a *ArticulatedBody) LocalPoint(linkIndex int, world vmath.Vec3) vmath.Vec3 {
	origin := a.Pos
	if linkIndex != NoID {
		origin = a.LinkWorldPos(linkIndex)
	}
	return vmath.QRotate(vmath.QConj(a.Orient), vmath.V3Sub(world, origin))
}
