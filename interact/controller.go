package interact

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/scene-pilot/agent"
	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/input"
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// Controller is the two-mode mouse state machine. In LOOK mode mouse
// motion steers the agent; in GRAB mode it picks and drags bodies through
// a Grabber. The controller is the single writer of the grabber.
type Controller struct {
	mode    Mode
	grabber *Grabber

	eng     Engine
	agt     *agent.Agent
	surface Surface
	cues    Cues
	log     *zap.Logger

	physicsEnabled bool

	prevPoint vmath.Vec2
	havePrev  bool
}

// NewController wires the controller to its collaborators.
// cues may be nil.
func NewController(eng Engine, agt *agent.Agent, surface Surface, cues Cues, physicsEnabled bool, log *zap.Logger) *Controller {
	return &Controller{
		mode:           ModeLook,
		eng:            eng,
		agt:            agt,
		surface:        surface,
		cues:           cues,
		physicsEnabled: physicsEnabled,
		log:            log,
	}
}

// Mode returns the active interaction mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// HasGrab reports whether a grabber is active
func (c *Controller) HasGrab() bool {
	return c.grabber != nil
}

// CycleMode advances to the next interaction mode, wrapping
func (c *Controller) CycleMode() Mode {
	c.mode = c.mode.Next()
	if c.cues != nil {
		c.cues.ModeCycle()
	}
	c.log.Info("mouse mode set", zap.Stringer("mode", c.mode))
	return c.mode
}

// scalePoint rescales a window-space point by framebufferSize/windowSize
// to correct for high-density displays
func (c *Controller) scalePoint(x, y int) vmath.Vec2 {
	fbW, fbH := c.surface.FramebufferSize()
	winW, winH := c.surface.WindowSize()
	if winW == 0 || winH == 0 {
		return vmath.Vec2{X: float64(x), Y: float64(y)}
	}
	scale := vmath.Vec2{X: float64(fbW) / float64(winW), Y: float64(fbH) / float64(winH)}
	return vmath.V2Mul(vmath.Vec2{X: float64(x), Y: float64(y)}, scale)
}

// MouseMove handles pointer motion. LOOK mode with the primary button held
// steers: yaw goes to the body, pitch to every sensor beneath it. GRAB mode
// with an active grabber drags the held object.
func (c *Controller) MouseMove(x, y int, btn input.MouseButton) {
	point := c.scalePoint(x, y)

	switch {
	case c.mode == ModeLook && btn == input.ButtonPrimary && c.havePrev:
		delta := vmath.V2Scale(vmath.V2Sub(point, c.prevPoint), constants.LookSensitivity*0.5)
		c.agt.YawDelta(-delta.X * vmath.Deg2Rad)
		c.agt.PitchSensors(-delta.Y * vmath.Deg2Rad)

	case c.mode == ModeGrab && c.grabber != nil:
		c.updateGrabAt(point)
	}

	c.prevPoint = point
	c.havePrev = true
}

// MousePress picks in GRAB mode. A miss or an unresolvable owner is a
// logged no-op. The press only creates a grabber when none exists; while
// one exists, motion routes to updates instead of re-picking.
func (c *Controller) MousePress(x, y int, btn input.MouseButton) {
	point := c.scalePoint(x, y)
	defer func() {
		c.prevPoint = point
		c.havePrev = true
	}()

	if c.mode != ModeGrab || !c.physicsEnabled || c.grabber != nil {
		return
	}

	cam := c.agt.Camera()
	fbW, fbH := c.surface.FramebufferSize()
	ray := cam.Unproject(point, float64(fbW), float64(fbH))

	hit, ok := c.eng.CastRay(ray)
	if !ok {
		c.log.Debug("pick ray missed")
		return
	}

	owner := ResolveHitOwner(c.eng, hit.ObjectID)
	if owner.Kind == OwnerUnresolved {
		c.log.Warn("could not resolve hit object", zap.Int("object_id", hit.ObjectID))
		return
	}

	var (
		objectPivot vmath.Vec3
		objectFrame vmath.Quat
	)
	switch owner.Kind {
	case OwnerBody:
		if rb := c.eng.RigidByID(owner.BodyID); rb != nil {
			objectPivot = rb.LocalPoint(hit.Point)
			objectFrame = vmath.QConj(rb.Orient)
		} else if ab := c.eng.ArticulatedByID(owner.BodyID); ab != nil {
			objectPivot = ab.LocalPoint(physics.NoID, hit.Point)
			objectFrame = vmath.QConj(ab.Orient)
		}
	case OwnerLink:
		ab := c.eng.ArticulatedByID(owner.BodyID)
		objectPivot = ab.LocalPoint(owner.LinkID, hit.Point)
		objectFrame = vmath.QConj(ab.Orient)
	}

	bodyRot := c.agt.Rotation()
	spec := physics.ConstraintSpec{
		ObjectID: owner.BodyID,
		LinkID:   owner.LinkID,
		PivotA:   objectPivot,
		PivotB:   hit.Point,
		FrameA:   vmath.QMul(objectFrame, bodyRot),
		FrameB:   bodyRot,
		Kind:     physics.PointToPoint,
	}
	if btn == input.ButtonSecondary {
		spec.Kind = physics.Fixed
	}

	c.grabber = NewGrabber(c.eng, spec, vmath.V3Dist(hit.Point, cam.Pos))
	if c.cues != nil {
		c.cues.Pick()
	}
	c.log.Info("grabbed object",
		zap.Int("body_id", owner.BodyID),
		zap.Int("link_id", owner.LinkID),
		zap.Stringer("kind", spec.Kind),
	)
}

// MouseScroll zooms the active camera in LOOK mode and adjusts grip depth
// in GRAB mode with an active grabber. Zero-magnitude scroll is absorbed.
func (c *Controller) MouseScroll(amount float64, shift bool, x, y int) {
	if amount == 0 {
		return
	}

	switch {
	case c.mode == ModeLook:
		factor := constants.ZoomFactorCoarse
		if shift {
			factor = constants.ZoomFactorFine
		}
		if amount < 0 {
			factor = 1.0 / factor
		}
		c.agt.ActiveSensor().Zoom(factor)

	case c.mode == ModeGrab && c.grabber != nil:
		step := constants.GripScrollStep
		if shift {
			step = constants.GripScrollStepShift
		}
		c.grabber.GripDepth += amount * step

		// Depth change must visibly move the held object along the view ray
		c.updateGrabAt(c.scalePoint(x, y))
	}
}

// MouseRelease destroys any active grabber. Idempotent.
func (c *Controller) MouseRelease() {
	if c.grabber == nil {
		return
	}
	c.grabber.Release()
	c.grabber = nil
	if c.cues != nil {
		c.cues.Release()
	}
	c.log.Info("released object")
}

// RefreshGrab re-anchors the constraint at the most recent mouse point.
// Called once per frame when agent actions ran, so a stationary mouse with
// the agent moving underneath still drags correctly.
func (c *Controller) RefreshGrab() {
	if c.grabber == nil || !c.havePrev {
		return
	}
	c.updateGrabAt(c.prevPoint)
}

// updateGrabAt walks GripDepth units along the ray through the given
// framebuffer point and pushes the new anchor transform to the engine
func (c *Controller) updateGrabAt(point vmath.Vec2) {
	cam := c.agt.Camera()
	fbW, fbH := c.surface.FramebufferSize()
	ray := cam.Unproject(point, float64(fbW), float64(fbH))

	pivot := vmath.V3Add(cam.Pos, vmath.V3Scale(ray.Dir, c.grabber.GripDepth))
	c.grabber.UpdateTransform(c.agt.Rotation(), pivot)
}

// Teardown releases any active grabber, used on scene reset and shutdown
func (c *Controller) Teardown() {
	if c.grabber != nil {
		c.grabber.Release()
		c.grabber = nil
	}
}
