package core

import (
	"testing"
	"time"
)

func TestWallClockTick(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration

	c := &WallClock{
		now:   func() time.Time { return now },
		sleep: func(d time.Duration) { slept = append(slept, d); now = now.Add(d) },
	}

	// First tick waits a full interval
	c.Tick(5)
	if len(slept) != 1 || slept[0] != 200*time.Millisecond {
		t.Fatalf("slept = %v, expected [200ms]", slept)
	}

	// 50ms of work, then the clock waits out the remaining 150ms
	now = now.Add(50 * time.Millisecond)
	c.Tick(5)
	if len(slept) != 2 || slept[1] != 150*time.Millisecond {
		t.Errorf("slept = %v, expected [200ms 150ms]", slept)
	}

	// Work slower than the interval does not sleep
	now = now.Add(300 * time.Millisecond)
	c.Tick(5)
	if len(slept) != 2 {
		t.Errorf("Tick should not sleep when behind schedule, slept %v", slept)
	}
}

func TestWallClockFirstTickFromCreation(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	var slept []time.Duration

	c := NewWallClock()
	c.last = start
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) { slept = append(slept, d); now = now.Add(d) }

	// The first frame took 30ms to render after the clock was created
	now = now.Add(30 * time.Millisecond)
	c.Tick(5)
	if len(slept) != 1 || slept[0] != 170*time.Millisecond {
		t.Errorf("slept = %v, expected [170ms]", slept)
	}
	if got := now.Sub(start); got != 200*time.Millisecond {
		t.Errorf("first tick boundary at %v, expected 200ms", got)
	}
}

func TestWallClockInvalidRate(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration

	c := &WallClock{
		last:  now,
		now:   func() time.Time { return now },
		sleep: func(d time.Duration) { slept = append(slept, d); now = now.Add(d) },
	}

	c.Tick(0)
	if len(slept) != 1 || slept[0] != 200*time.Millisecond {
		t.Errorf("slept = %v, expected [200ms] at the default rate", slept)
	}
}

func TestRuntimeConfigInterval(t *testing.T) {
	if d := DefaultConfig().Interval(); d != 200*time.Millisecond {
		t.Errorf("Interval() = %v, expected 200ms", d)
	}
	if d := (RuntimeConfig{TickRate: 10}).Interval(); d != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected 100ms", d)
	}
}
