// Package sound plays the short tone the game makes when the snake eats.
package sound

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	eatFreq    = 880
	eatLength  = 50 * time.Millisecond
)

// Player emits game sound effects. The zero value is a silent player.
type Player struct {
	enabled bool
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{}
}

// Open initializes the speaker. On failure the returned player is silent
// and the error explains why, so callers may log it and carry on.
func Open() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return Silent(), fmt.Errorf("sound: speaker init failed: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Setup opens the speaker when enabled is true. A failed init is logged
// as a warning and yields a silent player.
func Setup(enabled bool, logger *log.Logger) *Player {
	if !enabled {
		return Silent()
	}
	p, err := Open()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return p
}

// Enabled reports whether the player produces sound.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// EatTone returns the streamer for the eat effect.
func EatTone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, eatFreq)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot build tone: %w", err)
	}
	return beep.Take(sampleRate.N(eatLength), sine), nil
}

// Eat plays the eat tone without blocking.
func (p *Player) Eat() {
	if !p.Enabled() {
		return
	}
	tone, err := EatTone()
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}
