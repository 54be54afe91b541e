package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the arrow-key bindings. Quit also accepts q and Ctrl+C.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game event.
// ok is false for keys the game does not recognize.
func (k KeyMap) MapKey(msg tea.KeyMsg) (ev core.Event, ok bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit(), true
	case key.Matches(msg, k.Up):
		return core.KeyPress(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.KeyPress(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.KeyPress(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.KeyPress(core.KeyRight), true
	}
	return core.Event{}, false
}
