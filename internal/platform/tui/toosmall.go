package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TooSmallModel tells the player the terminal cannot fit the board.
// Any key closes it.
type TooSmallModel struct {
	board  core.Board
	width  int
	height int
	done   bool
}

// NewTooSmallModel creates the notice for a terminal of the given size.
func NewTooSmallModel(board core.Board, width, height int) TooSmallModel {
	return TooSmallModel{board: board, width: width, height: height}
}

// Init implements tea.Model.
func (m TooSmallModel) Init() tea.Cmd {
	return nil
}

// Update quits on any key press.
func (m TooSmallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the notice.
func (m TooSmallModel) View() string {
	if m.done {
		return ""
	}
	cols, rows := m.board.TermSize()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Bold(true)
	return style.Render(fmt.Sprintf("Terminal is %dx%d, snake needs at least %dx%d.", m.width, m.height, cols, rows)) +
		"\nResize and reconnect. Press any key to exit."
}
