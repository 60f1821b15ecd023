package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/scene-pilot/agent"
	"github.com/lixenwraith/scene-pilot/input"
)

// World is the physics stepping surface the stepper consumes
type World interface {
	StepWorld(dt float64)
}

// Actor applies one discrete agent action
type Actor interface {
	Act(a agent.Action)
}

// GrabRefresher re-anchors an active grab from the last known mouse point
type GrabRefresher interface {
	RefreshGrab()
}

// RenderSurface presents the current frame and schedules the next
type RenderSurface interface {
	Present()
	RequestRedraw()
}

// Stepper composes the per-frame pipeline: pace the frame, derive the
// action budget, replay held actions, gate the physics tick, render.
// Everything runs on the single control goroutine.
type Stepper struct {
	frameClock *FrameClock
	simClock   *SimClock

	held     *input.HeldSet
	bindings input.Bindings

	actor   Actor
	world   World
	grab    GrabRefresher
	surface RenderSurface
	log     *zap.Logger

	physicsEnabled bool
	simulating     bool
	stepOnce       bool
}

// NewStepper wires the per-frame pipeline. Continuous simulation starts
// enabled; with physics disabled the toggle still flips but steps nothing.
func NewStepper(
	held *input.HeldSet,
	bindings input.Bindings,
	actor Actor,
	world World,
	grab GrabRefresher,
	surface RenderSurface,
	tickRate float64,
	physicsEnabled bool,
	log *zap.Logger,
) *Stepper {
	return &Stepper{
		frameClock:     NewFrameClock(),
		simClock:       NewSimClock(tickRate),
		held:           held,
		bindings:       bindings,
		actor:          actor,
		world:          world,
		grab:           grab,
		surface:        surface,
		log:            log,
		physicsEnabled: physicsEnabled,
		simulating:     true,
	}
}

// Start begins frame pacing
func (s *Stepper) Start() {
	s.frameClock.Start()
}

// Frame runs one iteration of the control loop. Ordering within the frame
// is fixed: pacing, action replay, grab refresh, tick gate, render.
func (s *Stepper) Frame() {
	s.frameClock.Advance()

	actions, tickDue := s.simClock.Advance(s.frameClock.PrevFrameDuration().Seconds())

	// Replay every held action once per elapsed tick, in binding order.
	// actions == 0 short-circuits, leaving the grab untouched.
	if actions > 0 {
		queue := s.bindings.ActiveActions(s.held)
		for i := 0; i < actions; i++ {
			for _, a := range queue {
				s.actor.Act(a)
			}
		}

		// Once per frame, not per tick
		s.grab.RefreshGrab()
	}

	if tickDue {
		if s.simulating || s.stepOnce {
			if s.physicsEnabled {
				s.world.StepWorld(s.simClock.TickPeriod())
			}
			s.stepOnce = false
		}
		s.simClock.ConsumeTick()
	}

	s.surface.Present()
	s.surface.RequestRedraw()
}

// ToggleSimulation flips continuous physics stepping. With physics
// disabled the flip still happens but has no physical effect.
func (s *Stepper) ToggleSimulation() bool {
	if !s.physicsEnabled {
		s.log.Warn("physics was not enabled during setup")
	}
	s.simulating = !s.simulating
	s.log.Info("physics simulating set", zap.Bool("simulating", s.simulating))
	return s.simulating
}

// RequestSingleStep arms one physics tick at the next opportunity.
// Suppressed with a warning while continuous simulation runs.
func (s *Stepper) RequestSingleStep() {
	if s.simulating {
		s.log.Warn("physics simulation already running")
		return
	}
	s.stepOnce = true
	s.log.Info("physics step queued")
}

// Simulating reports whether continuous stepping is enabled
func (s *Stepper) Simulating() bool {
	return s.simulating
}

// Reset restarts both clocks and clears any pending single step, used on
// scene reset
func (s *Stepper) Reset() {
	s.frameClock.Start()
	s.simClock.Reset()
	s.stepOnce = false
}
