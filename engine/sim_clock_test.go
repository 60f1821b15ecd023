package engine

import (
	"math"
	"testing"
)

const tickRate = 60.0

func TestTwoFramesSummingToOneTickFireOnce(t *testing.T) {
	sc := NewSimClock(tickRate)
	half := 1.0 / (2 * tickRate)

	actions, tickDue := sc.Advance(half)
	if tickDue {
		t.Fatal("tick fired after half a period")
	}
	if actions != 0 {
		t.Fatalf("expected 0 actions after half a period, got %d", actions)
	}

	_, tickDue = sc.Advance(half)
	if !tickDue {
		t.Fatal("tick did not fire after exactly one period")
	}
	sc.ConsumeTick()

	if sc.Accumulated() != 0 {
		t.Fatalf("expected zero residual after exact period, got %v", sc.Accumulated())
	}
}

func TestSubTickFramesNeverFireAndAccumulate(t *testing.T) {
	sc := NewSimClock(tickRate)

	prev := 0.0
	for i := 0; i < 5; i++ {
		_, tickDue := sc.Advance(0.001)
		if tickDue {
			t.Fatalf("tick fired with only %v accumulated", sc.Accumulated())
		}
		if sc.Accumulated() <= prev {
			t.Fatal("accumulated time did not strictly increase")
		}
		prev = sc.Accumulated()
	}
}

func TestLargeBacklogCapsAtOneTick(t *testing.T) {
	sc := NewSimClock(tickRate)
	period := sc.TickPeriod()

	// A five-period hitch still yields a single tick gate
	actions, tickDue := sc.Advance(5 * period)
	if !tickDue {
		t.Fatal("tick did not fire under backlog")
	}
	if actions != 5 {
		t.Fatalf("expected 5 actions under 5-period backlog, got %d", actions)
	}

	sc.ConsumeTick()
	want := math.Mod(5*period, period)
	if math.Abs(sc.Accumulated()-want) > 1e-12 {
		t.Fatalf("residual %v, want %v", sc.Accumulated(), want)
	}
	if sc.Accumulated() >= period {
		t.Fatal("residual not reduced below one period")
	}
}

func TestTwentyMillisecondFrames(t *testing.T) {
	sc := NewSimClock(tickRate)
	period := sc.TickPeriod()

	// First frame: 0.02s crosses one period
	actions, tickDue := sc.Advance(0.02)
	if actions != 1 || !tickDue {
		t.Fatalf("frame 1: actions=%d tickDue=%v, want 1 true", actions, tickDue)
	}
	sc.ConsumeTick()
	if math.Abs(sc.Accumulated()-(0.02-period)) > 1e-9 {
		t.Fatalf("frame 1 residual %v", sc.Accumulated())
	}

	// Second frame: cumulative 0.0333 crosses again with ~0.007 residual,
	// not two ticks
	actions, tickDue = sc.Advance(0.02)
	if actions != 1 || !tickDue {
		t.Fatalf("frame 2: actions=%d tickDue=%v, want 1 true", actions, tickDue)
	}
	sc.ConsumeTick()
	if math.Abs(sc.Accumulated()-(0.04-2*period)) > 1e-9 {
		t.Fatalf("frame 2 residual %v, want ~0.00667", sc.Accumulated())
	}
}

func TestResidualPreservedByModulo(t *testing.T) {
	sc := NewSimClock(tickRate)
	period := sc.TickPeriod()

	sc.Advance(period * 1.75)
	sc.ConsumeTick()

	want := math.Mod(period*1.75, period)
	if math.Abs(sc.Accumulated()-want) > 1e-12 {
		t.Fatalf("residual %v, want %v", sc.Accumulated(), want)
	}
}

func TestZeroTickRateFallsBackToDefault(t *testing.T) {
	sc := NewSimClock(0)
	if sc.TickPeriod() <= 0 {
		t.Fatal("default tick period must be positive")
	}
}
