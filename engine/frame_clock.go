package engine

import (
	"time"
)

// FrameClock measures wall-clock time between successive render frames.
// Durations are measured pacer-to-pacer, deliberately including render
// cost; Advance must be called exactly once per rendered frame.
type FrameClock struct {
	startTime     time.Time
	prevFrameTime time.Time
	prevFrameDur  time.Duration
	running       bool

	now func() time.Time
}

// NewFrameClock creates a stopped frame clock on the wall clock
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Start initializes all fields to the current time and begins measuring
func (fc *FrameClock) Start() {
	t := fc.now()
	fc.startTime = t
	fc.prevFrameTime = t
	fc.prevFrameDur = 0
	fc.running = true
}

// Stop erases all timing state
func (fc *FrameClock) Stop() {
	fc.startTime = time.Time{}
	fc.prevFrameTime = time.Time{}
	fc.prevFrameDur = 0
	fc.running = false
}

// Advance records the duration since the previous frame. Inert while
// stopped.
func (fc *FrameClock) Advance() {
	if !fc.running {
		return
	}
	t := fc.now()
	fc.prevFrameDur = t.Sub(fc.prevFrameTime)
	fc.prevFrameTime = t
}

// PrevFrameDuration returns the last measured frame duration
func (fc *FrameClock) PrevFrameDuration() time.Duration {
	return fc.prevFrameDur
}

// Running reports whether the clock is measuring
func (fc *FrameClock) Running() bool {
	return fc.running
}
