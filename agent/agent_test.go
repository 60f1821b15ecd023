package agent

import (
	"math"
	"testing"

	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/vmath"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveForwardFollowsYaw(t *testing.T) {
	a := New(vmath.Vec3{})

	a.Act(ActionMoveForward)
	if !almostEqual(a.Pos.Z, -constants.MoveActuation) || !almostEqual(a.Pos.X, 0) {
		t.Fatalf("pos = %+v, want straight down -Z", a.Pos)
	}

	// Quarter turn left, forward now points down -X
	a.Pos = vmath.Vec3{}
	a.Yaw = math.Pi / 2
	a.Act(ActionMoveForward)
	if !almostEqual(a.Pos.X, -constants.MoveActuation) || !almostEqual(a.Pos.Z, 0) {
		t.Fatalf("pos = %+v after quarter turn, want straight down -X", a.Pos)
	}
}

func TestStrafeAndVerticalMoves(t *testing.T) {
	a := New(vmath.Vec3{})

	a.Act(ActionMoveRight)
	if !almostEqual(a.Pos.X, constants.MoveActuation) {
		t.Fatalf("pos = %+v after strafe right, want +X", a.Pos)
	}

	a.Act(ActionMoveLeft)
	if !almostEqual(a.Pos.X, 0) {
		t.Fatalf("pos = %+v, strafes did not cancel", a.Pos)
	}

	a.Act(ActionMoveUp)
	a.Act(ActionMoveUp)
	a.Act(ActionMoveDown)
	if !almostEqual(a.Pos.Y, constants.MoveActuation) {
		t.Fatalf("pos = %+v after up/up/down, want one step of +Y", a.Pos)
	}
}

func TestTurnActionsYawBody(t *testing.T) {
	a := New(vmath.Vec3{})
	step := constants.LookActuation * vmath.Deg2Rad

	a.Act(ActionTurnLeft)
	if !almostEqual(a.Yaw, step) {
		t.Fatalf("yaw = %v after turn left, want %v", a.Yaw, step)
	}
	a.Act(ActionTurnRight)
	a.Act(ActionTurnRight)
	if !almostEqual(a.Yaw, -step) {
		t.Fatalf("yaw = %v, want %v", a.Yaw, -step)
	}
}

func TestLookActionsPitchSensorsNotBody(t *testing.T) {
	a := New(vmath.Vec3{})
	step := constants.LookActuation * vmath.Deg2Rad

	a.Act(ActionLookUp)
	if a.Yaw != 0 {
		t.Fatal("look action yawed the body")
	}
	if !almostEqual(a.ActiveSensor().Pitch, step) {
		t.Fatalf("pitch = %v, want %v", a.ActiveSensor().Pitch, step)
	}
}

func TestPitchMovesAllSensorsInLockStep(t *testing.T) {
	a := New(vmath.Vec3{})
	a.Sensors = append(a.Sensors, NewSensor("depth_sensor", vmath.Vec3{Y: constants.AgentHeight}))

	a.PitchSensors(0.25)
	for _, s := range a.Sensors {
		if !almostEqual(s.Pitch, 0.25) {
			t.Fatalf("sensor %s pitch = %v, want 0.25", s.Name, s.Pitch)
		}
	}
}

func TestPitchClampsAtLimit(t *testing.T) {
	a := New(vmath.Vec3{})
	limit := constants.SensorPitchLimit * vmath.Deg2Rad

	a.PitchSensors(10)
	if !almostEqual(a.ActiveSensor().Pitch, limit) {
		t.Fatalf("pitch = %v, want clamped to %v", a.ActiveSensor().Pitch, limit)
	}
	a.PitchSensors(-20)
	if !almostEqual(a.ActiveSensor().Pitch, -limit) {
		t.Fatalf("pitch = %v, want clamped to %v", a.ActiveSensor().Pitch, -limit)
	}
}

func TestZoomClampsFOV(t *testing.T) {
	s := NewSensor("color_sensor", vmath.Vec3{})

	s.Zoom(constants.ZoomFactorCoarse)
	if !almostEqual(s.FOV, constants.DefaultFOV/constants.ZoomFactorCoarse) {
		t.Fatalf("fov = %v after one zoom in", s.FOV)
	}

	for i := 0; i < 200; i++ {
		s.Zoom(constants.ZoomFactorCoarse)
	}
	if !almostEqual(s.FOV, constants.MinFOV) {
		t.Fatalf("fov = %v, want clamped to min", s.FOV)
	}

	for i := 0; i < 200; i++ {
		s.Zoom(1 / constants.ZoomFactorCoarse)
	}
	if !almostEqual(s.FOV, constants.MaxFOV) {
		t.Fatalf("fov = %v, want clamped to max", s.FOV)
	}
}

func TestCameraComposesYawAndPitch(t *testing.T) {
	a := New(vmath.Vec3{X: 1})
	a.Yaw = math.Pi / 2
	a.PitchSensors(math.Pi / 4)

	cam := a.Camera()
	if !almostEqual(cam.Pos.X, 1) || !almostEqual(cam.Pos.Y, constants.AgentHeight) {
		t.Fatalf("camera pos = %+v, want sensor mount above the body", cam.Pos)
	}

	// Yaw 90 left then pitch 45 up: view direction is -X tilted upward
	fwd := cam.ForwardDir()
	if fwd.X >= 0 || fwd.Y <= 0 || !almostEqual(fwd.Z, 0) {
		t.Fatalf("forward = %+v, want up-tilted -X", fwd)
	}
}

func TestUnprojectProjectRoundTrip(t *testing.T) {
	a := New(vmath.Vec3{})
	a.Yaw = 0.3
	a.PitchSensors(-0.2)
	cam := a.Camera()

	const fbW, fbH = 800.0, 600.0
	point := vmath.Vec2{X: 523, Y: 188}

	ray := cam.Unproject(point, fbW, fbH)
	world := vmath.V3Add(ray.Origin, vmath.V3Scale(ray.Dir, 7))

	back, depth, ok := cam.Project(world, fbW, fbH)
	if !ok {
		t.Fatal("projected point reported behind camera")
	}
	if math.Abs(back.X-point.X) > 1e-6 || math.Abs(back.Y-point.Y) > 1e-6 {
		t.Fatalf("round trip %+v -> %+v", point, back)
	}
	if depth <= 0 {
		t.Fatalf("depth = %v, want positive", depth)
	}
}

func TestProjectRejectsPointsBehindCamera(t *testing.T) {
	a := New(vmath.Vec3{})
	cam := a.Camera()

	_, _, ok := cam.Project(vmath.Vec3{Y: constants.AgentHeight, Z: 5}, 800, 600)
	if ok {
		t.Fatal("point behind camera projected")
	}
}

func TestCenterPixelUnprojectsToViewDirection(t *testing.T) {
	a := New(vmath.Vec3{})
	cam := a.Camera()

	ray := cam.Unproject(vmath.Vec2{X: 400, Y: 300}, 800, 600)
	if !almostEqual(ray.Dir.X, 0) || !almostEqual(ray.Dir.Y, 0) || !almostEqual(ray.Dir.Z, -1) {
		t.Fatalf("center ray = %+v, want straight ahead", ray.Dir)
	}
}

func TestNormalizedYawWraps(t *testing.T) {
	a := New(vmath.Vec3{})

	a.Yaw = 3 * math.Pi
	if !almostEqual(a.NormalizedYaw(), math.Pi) {
		t.Fatalf("normalized yaw = %v, want pi", a.NormalizedYaw())
	}
	a.Yaw = -3 * math.Pi
	if !almostEqual(a.NormalizedYaw(), math.Pi) {
		t.Fatalf("normalized yaw = %v, want pi", a.NormalizedYaw())
	}
	a.Yaw = 0.5
	if !almostEqual(a.NormalizedYaw(), 0.5) {
		t.Fatalf("normalized yaw = %v, want 0.5", a.NormalizedYaw())
	}
}

func TestActionNames(t *testing.T) {
	cases := map[Action]string{
		ActionMoveForward: "move_forward",
		ActionTurnRight:   "turn_right",
	}
	for a, want := range cases {
		if a.String() != want {
			t.Fatalf("%d.String() = %q, want %q", a, a.String(), want)
		}
	}
}
