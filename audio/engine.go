package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short interaction cues. Audio is best-effort: when the
// speaker fails to initialize every cue is a no-op.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. The returned error is informational;
// the engine stays usable (silent) on failure.
func NewEngine() (*Engine, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Engine{enabled: err == nil}, err
}

// Enabled reports whether the speaker initialized
func (e *Engine) Enabled() bool {
	return e.enabled
}

func (e *Engine) tone(freq float64, dur time.Duration) {
	if !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

// Pick sounds when a grab constraint is created
func (e *Engine) Pick() {
	e.tone(880, 50*time.Millisecond)
}

// Release sounds when an active grab is dropped
func (e *Engine) Release() {
	e.tone(660, 40*time.Millisecond)
}

// ModeCycle sounds on interaction mode changes
func (e *Engine) ModeCycle() {
	e.tone(520, 30*time.Millisecond)
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}
