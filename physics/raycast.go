package physics

import (
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Hit is the nearest intersection of a ray with the scene
type Hit struct {
	ObjectID int
	Point    vmath.Vec3
	Distance float64
}

// CastRay intersects the ray with every body sphere and returns the
// nearest hit. Articulated links are tested individually and report their
// own object ids.
func (w *World) CastRay(ray vmath.Ray) (Hit, bool) {
	best := Hit{ObjectID: NoID}
	found := false

	consider := func(id int, center vmath.Vec3, radius float64) {
		t, ok := vmath.RaySphere(ray, center, radius)
		if !ok {
			return
		}
		if !found || t < best.Distance {
			best = Hit{ObjectID: id, Point: ray.Point(t), Distance: t}
			found = true
		}
	}

	for _, rb := range w.rigids {
		consider(rb.ID, rb.Pos, rb.Radius)
	}
	for _, ab := range w.articulated {
		consider(ab.ID, ab.Pos, ab.Radius)
		for i := range ab.Links {
			consider(ab.Links[i].ObjectID, ab.LinkWorldPos(i), ab.Links[i].Radius)
		}
	}

	return best, found
}
