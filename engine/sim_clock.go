package engine

import (
	"math"

	"github.com/lixenwraith/scene-pilot/constants"
)

// SimClock converts elapsed wall-clock time into discrete simulation
// budget: a per-frame count of agent actions and an at-most-one physics
// tick gate. An explicit value owned by the Stepper, not package state, so
// it tests without a live render loop.
//
// The asymmetry is deliberate: held actions replay once per elapsed tick,
// but physics advances at most one tick per render frame regardless of
// backlog. Under sustained slow frames simulated time runs behind the wall
// clock; that drift buys bounded per-frame cost.
type SimClock struct {
	accumulated float64 // seconds since the last applied physics tick
	tickRate    float64 // ticks per second
}

// NewSimClock creates a clock at the given tick rate, or the default rate
// when zero
func NewSimClock(tickRate float64) *SimClock {
	if tickRate <= 0 {
		tickRate = constants.SimTickRate
	}
	return &SimClock{tickRate: tickRate}
}

// TickPeriod returns the fixed physics step in seconds
func (sc *SimClock) TickPeriod() float64 {
	return 1.0 / sc.tickRate
}

// Advance adds a frame duration and reports the action count for this
// frame plus whether one physics tick is due
func (sc *SimClock) Advance(frameDur float64) (actions int, tickDue bool) {
	sc.accumulated += frameDur
	actions = int(math.Floor(sc.accumulated * sc.tickRate))
	tickDue = sc.accumulated >= sc.TickPeriod()
	return actions, tickDue
}

// ConsumeTick reduces accumulated time by exactly one tick period using
// modulo, preserving fractional overflow instead of discarding it
func (sc *SimClock) ConsumeTick() {
	sc.accumulated = math.Mod(sc.accumulated, sc.TickPeriod())
}

// Accumulated returns the residual time since the last applied tick
func (sc *SimClock) Accumulated() float64 {
	return sc.accumulated
}

// Reset zeroes the accumulator, used on scene reset
func (sc *SimClock) Reset() {
	sc.accumulated = 0
}
