package core

import "time"

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 5

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default TickRate)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: TickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Interval returns the duration of one tick.
func (c RuntimeConfig) Interval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = TickRate
	}
	return time.Second / time.Duration(rate)
}
