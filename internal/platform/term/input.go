package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// eventBuffer bounds the events kept between two ticks.
const eventBuffer = 64

// Input pumps tcell events from a background goroutine and hands them to
// the game loop on each poll. Resizes are handled on the poll so that the
// screen is resynced from the goroutine that draws it.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// NewInput starts the event pump for screen. Call Close to stop it.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go in.pump(screen)
	return in
}

func (in *Input) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// PollEvents returns all events received since the previous poll.
func (in *Input) PollEvents() []core.Event {
	var out []core.Event
	for {
		select {
		case ev := <-in.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				in.screen.Sync()
				continue
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// Close stops the pump. The screen must be finalized as well so that a
// pending PollEvent returns.
func (in *Input) Close() {
	close(in.done)
}

// translate maps a tcell event to a game event.
func translate(ev tcell.Event) (core.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return core.KeyPress(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyPress(core.KeyDown), true
	case tcell.KeyLeft:
		return core.KeyPress(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyPress(core.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.Quit(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' || key.Rune() == 'Q' {
			return core.Quit(), true
		}
	}
	return core.Event{}, false
}
