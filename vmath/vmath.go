package vmath

import (
	"math"
)

const (
	// Epsilon is the tolerance for float comparisons in tests and solvers
	Epsilon = 1e-9

	// Deg2Rad converts degrees to radians
	Deg2Rad = math.Pi / 180.0
)

func sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Fmod returns the floating-point remainder of x/y with the sign of x
func Fmod(x, y float64) float64 {
	return math.Mod(x, y)
}
