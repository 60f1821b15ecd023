package vmath

// Ray is a half-line from Origin along normalized Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Point returns the point t units along the ray
func (r Ray) Point(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

// RaySphere intersects the ray with a sphere and returns the nearest
// non-negative hit distance
func RaySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := V3Sub(r.Origin, center)
	b := V3Dot(oc, r.Dir)
	c := V3MagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sqrtD := sqrt(disc)
	t := -b - sqrtD
	if t < 0 {
		t = -b + sqrtD
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
