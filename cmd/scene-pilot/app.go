package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/scene-pilot/agent"
	"github.com/lixenwraith/scene-pilot/audio"
	"github.com/lixenwraith/scene-pilot/config"
	"github.com/lixenwraith/scene-pilot/constants"
	"github.com/lixenwraith/scene-pilot/engine"
	"github.com/lixenwraith/scene-pilot/input"
	"github.com/lixenwraith/scene-pilot/interact"
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/render"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// app owns every component of the control loop. All state mutation happens
// on the goroutine running run().
type app struct {
	cfg    config.Config
	screen tcell.Screen
	log    *zap.Logger

	world    *physics.World
	agt      *agent.Agent
	machine  *input.Machine
	held     *input.HeldSet
	bindings input.Bindings
	ctrl     *interact.Controller
	stepper  *engine.Stepper
	term     *render.Terminal
	sound    *audio.Engine
}

func newApp(cfg config.Config, screen tcell.Screen, log *zap.Logger) *app {
	world := physics.NewWorld()
	seedScene(world, cfg.Scene)

	agt := agent.New(vmath.Vec3{Z: 5})

	var sound *audio.Engine
	if cfg.EnableAudio {
		var err error
		sound, err = audio.NewEngine()
		if err != nil {
			// Non-fatal, the viewer runs without sound
			log.Warn("audio initialization failed", zap.Error(err))
		}
	}

	term := render.NewTerminal(screen, world, agt)

	var cues interact.Cues
	if sound != nil && sound.Enabled() {
		cues = sound
	}
	ctrl := interact.NewController(world, agt, term, cues, cfg.EnablePhysics, log)

	held := &input.HeldSet{}
	bindings := input.DefaultBindings()
	stepper := engine.NewStepper(
		held, bindings, agt, world, ctrl, term,
		cfg.TickRate, cfg.EnablePhysics, log,
	)

	a := &app{
		cfg:      cfg,
		screen:   screen,
		log:      log,
		world:    world,
		agt:      agt,
		machine:  input.NewMachine(),
		held:     held,
		bindings: bindings,
		ctrl:     ctrl,
		stepper:  stepper,
		term:     term,
		sound:    sound,
	}
	term.SetStatus(a)

	log.Info("scene-pilot starting",
		zap.Bool("physics", cfg.EnablePhysics),
		zap.Float64("tick_rate", cfg.TickRate),
		zap.Int64("scene_seed", cfg.Scene.Seed),
	)
	log.Info("controls:\n" + render.HelpText())

	return a
}

// run drives the single-threaded control loop: terminal events and frame
// ticks interleave on this goroutine; the poll goroutine owns no state.
func (a *app) run() {
	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.stepper.Start()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			// Keys whose auto-repeat went quiet release before replay
			for _, rel := range a.machine.ExpireHeld() {
				a.held.Release(rel.Key)
			}
			a.stepper.Frame()
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	// Every key event triggers a redraw, bound or not
	if _, isKey := ev.(*tcell.EventKey); isKey {
		a.term.RequestRedraw()
	}

	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}
	return a.handleIntent(intent)
}

func (a *app) handleIntent(intent *input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentMovePress:
		a.held.Press(intent.Key)
		a.log.Debug("key held", zap.Stringer("key", intent.Key))

	case input.IntentMoveRelease:
		a.held.Release(intent.Key)
		a.log.Debug("key released", zap.Stringer("key", intent.Key))

	case input.IntentCommand:
		a.log.Debug("command", zap.Stringer("op", intent.Command))
		a.handleCommand(intent.Command)

	case input.IntentMouseMove:
		a.ctrl.MouseMove(intent.MouseX, intent.MouseY, intent.Button)
		a.term.RequestRedraw()

	case input.IntentMousePress:
		a.ctrl.MousePress(intent.MouseX, intent.MouseY, intent.Button)
		a.term.RequestRedraw()

	case input.IntentMouseRelease:
		a.ctrl.MouseRelease()
		a.term.RequestRedraw()

	case input.IntentMouseScroll:
		a.ctrl.MouseScroll(intent.Scroll, intent.Shift, intent.MouseX, intent.MouseY)
		a.term.RequestRedraw()

	case input.IntentResize:
		w, h := a.screen.Size()
		a.term.Resize(w, h)
	}
	return true
}

func (a *app) handleCommand(cmd input.CommandOp) {
	switch cmd {
	case input.CommandHelp:
		a.term.ToggleHelp()

	case input.CommandToggleSim:
		a.stepper.ToggleSimulation()

	case input.CommandSingleStep:
		a.stepper.RequestSingleStep()

	case input.CommandCycleMode:
		a.ctrl.CycleMode()

	case input.CommandReset:
		a.reset()

	case input.CommandInvertGravity:
		g := vmath.V3Neg(a.world.Gravity())
		a.world.SetGravity(g)
		a.log.Info("gravity inverted", zap.Float64("gy", g.Y))
	}
}

// reset rebuilds the scene to its seeded state. Any active grab is torn
// down first so its engine constraint cannot outlive the bodies.
func (a *app) reset() {
	a.ctrl.Teardown()
	a.held.Clear()
	a.machine.Reset()

	a.world.Clear()
	seedScene(a.world, a.cfg.Scene)

	a.agt.Pos = vmath.Vec3{Z: 5}
	a.agt.Yaw = 0
	for _, s := range a.agt.Sensors {
		s.Pitch = 0
		s.FOV = constants.DefaultFOV
	}

	a.stepper.Reset()
	a.term.RequestRedraw()
	a.log.Info("scene reset")
}

func (a *app) cleanup() {
	a.ctrl.Teardown()
	if a.sound != nil {
		a.sound.Close()
	}
}

// Status line fields for the renderer

func (a *app) ModeName() string {
	return a.ctrl.Mode().String()
}

func (a *app) Simulating() bool {
	return a.stepper.Simulating()
}

func (a *app) HasGrab() bool {
	return a.ctrl.HasGrab()
}
