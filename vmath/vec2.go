package vmath

// Vec2 is a float64 2D vector, used for screen-space points and deltas
type Vec2 struct {
	X, Y float64
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Mul multiplies component-wise, used for HiDPI coordinate rescaling
func V2Mul(a, b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}
