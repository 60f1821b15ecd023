package vmath

import (
	"math"
	"testing"
)

func v3Near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestQFromYawRotatesForward(t *testing.T) {
	// Quarter turn left: -Z maps to -X
	q := QFromYaw(math.Pi / 2)
	got := QRotate(q, Vec3{Z: -1})
	if !v3Near(got, Vec3{X: -1}) {
		t.Fatalf("rotated forward = %+v, want -X", got)
	}
}

func TestQMulComposesRightToLeft(t *testing.T) {
	yaw := QFromYaw(math.Pi / 2)
	pitch := QFromAxisAngle(Vec3{X: 1}, math.Pi/2)

	// Pitch applied first in the local frame, then yaw
	q := QMul(yaw, pitch)
	got := QRotate(q, Vec3{Z: -1})
	if !v3Near(got, Vec3{Y: 1}) {
		t.Fatalf("composed rotation of -Z = %+v, want +Y", got)
	}
}

func TestQConjInverts(t *testing.T) {
	q := QFromAxisAngle(V3Normalize(Vec3{X: 1, Y: 2, Z: -0.5}), 0.8)
	v := Vec3{X: 0.3, Y: -1.2, Z: 4}

	back := QRotate(QConj(q), QRotate(q, v))
	if !v3Near(back, v) {
		t.Fatalf("round trip %+v -> %+v", v, back)
	}
}

func TestQNlerpEndpointsAndShortArc(t *testing.T) {
	a := QIdentity()
	b := QFromYaw(1.0)

	if got := QNlerp(a, b, 0); got != a {
		t.Fatalf("nlerp at 0 = %+v, want identity", got)
	}

	got := QNlerp(a, b, 1)
	fwd := QRotate(got, Vec3{Z: -1})
	want := QRotate(b, Vec3{Z: -1})
	if !v3Near(fwd, want) {
		t.Fatalf("nlerp at 1 rotates to %+v, want %+v", fwd, want)
	}

	// Negated quaternion encodes the same rotation; nlerp must not take the
	// long way around
	neg := Quat{-b.W, -b.X, -b.Y, -b.Z}
	mid := QNlerp(a, neg, 0.5)
	fwd = QRotate(mid, Vec3{Z: -1})
	halfway := QRotate(QFromYaw(0.5), Vec3{Z: -1})
	if !v3Near(fwd, halfway) {
		t.Fatalf("short-arc nlerp midpoint rotates to %+v, want %+v", fwd, halfway)
	}
}

func TestRaySphereHitsAndMisses(t *testing.T) {
	ray := Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}}

	tHit, ok := RaySphere(ray, Vec3{Z: -5}, 1)
	if !ok || math.Abs(tHit-4) > 1e-9 {
		t.Fatalf("hit = %v %v, want 4 true", tHit, ok)
	}

	if _, ok := RaySphere(ray, Vec3{X: 3, Z: -5}, 1); ok {
		t.Fatal("ray hit a sphere it passes beside")
	}

	if _, ok := RaySphere(ray, Vec3{Z: 5}, 1); ok {
		t.Fatal("ray hit a sphere behind its origin")
	}
}

func TestRaySphereFromInside(t *testing.T) {
	ray := Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}}

	tHit, ok := RaySphere(ray, Vec3{}, 2)
	if !ok || math.Abs(tHit-2) > 1e-9 {
		t.Fatalf("inside hit = %v %v, want exit at 2", tHit, ok)
	}
}

func TestFmodPreservesRemainder(t *testing.T) {
	if got := Fmod(0.045, 1.0/60.0); math.Abs(got-(0.045-2.0/60.0)) > 1e-12 {
		t.Fatalf("fmod = %v", got)
	}
}

func TestV3ClampMagnitude(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	clamped := V3ClampMagnitude(v, 1)
	if math.Abs(V3Mag(clamped)-1) > 1e-9 {
		t.Fatalf("clamped magnitude = %v, want 1", V3Mag(clamped))
	}
	if got := V3ClampMagnitude(v, 10); got != v {
		t.Fatalf("in-bounds vector altered: %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("clamp bounds violated")
	}
}
