package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model running one snake game.
// Key messages fill an event queue that the game drains on every TickMsg,
// so the queue is the input collaborator and tea.Tick is the clock.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	queue    *core.EventQueue
	keys     KeyMap
	onFinish func(snake.Snapshot)
	done     bool
}

// NewModel creates a Bubble Tea model for the given game.
// onFinish, if not nil, is called once when the game reaches a terminal state.
func NewModel(game *snake.Game, onFinish func(snake.Snapshot)) Model {
	m := Model{
		game:     game,
		screen:   core.NewScreen(game.Board()),
		queue:    &core.EventQueue{},
		keys:     DefaultKeyMap(),
		onFinish: onFinish,
	}
	m.draw()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues directional input. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.queue.Push(ev)

	if ev.Type == core.EventQuit {
		m.game.Step(m.queue.PollEvents())
		return m.finish()
	}
	return m, nil
}

// handleTick runs one simulation tick and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.queue.PollEvents())
	if result.State.Terminal() {
		return m.finish()
	}

	m.draw()
	return m, tickCmd(m.game.TickRate())
}

// draw renders the game into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	//nolint:errcheck // Screen.Present never fails
	m.screen.Present()
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.done = true
	if m.onFinish != nil {
		m.onFinish(m.game.Snapshot())
	}
	return m, tea.Quit
}

// Done reports whether the game has ended.
func (m Model) Done() bool {
	return m.done
}

// Snapshot returns the game's current snapshot.
func (m Model) Snapshot() snake.Snapshot {
	return m.game.Snapshot()
}

// View renders the current frame. Nothing is shown once the game ends.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return RenderScreen(m.screen)
}
