package core

import "time"

// Clock is the timing collaborator. Tick blocks until the next tick boundary
// for the given rate in ticks per second.
type Clock interface {
	Tick(rate int)
}

// WallClock is a Clock backed by real time. Like a frame limiter it sleeps
// only for whatever is left of the interval since the previous Tick. The
// first interval is measured from the moment the clock was created.
type WallClock struct {
	last  time.Time
	sleep func(time.Duration)
	now   func() time.Time
}

// NewWallClock creates a clock using time.Sleep and time.Now.
func NewWallClock() *WallClock {
	return &WallClock{
		last:  time.Now(),
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Tick blocks until 1/rate seconds have passed since the previous Tick.
func (c *WallClock) Tick(rate int) {
	interval := RuntimeConfig{TickRate: rate}.Interval()

	if c.last.IsZero() {
		c.last = c.now()
	}
	if remaining := interval - c.now().Sub(c.last); remaining > 0 {
		c.sleep(remaining)
	}
	c.last = c.now()
}
