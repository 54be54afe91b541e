package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Session list layout constants
const (
	sessionsMinHeight = 5 // Minimum visible table rows
	sessionsChrome    = 8 // Rows used by title, borders and help
	timeLayout        = "Jan 02 15:04"
)

// SessionsKeyMap defines the key bindings for the session list.
type SessionsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sessionColumns returns the table columns for session records.
func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "User", Width: 12},
		{Title: "Remote", Width: 21},
		{Title: "Outcome", Width: 10},
		{Title: "Ticks", Width: 7},
		{Title: "Started", Width: 13},
		{Title: "Duration", Width: 9},
	}
}

// sessionRows converts records into table rows.
func sessionRows(records []storage.SessionRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.User,
			r.Remote,
			r.Outcome,
			fmt.Sprintf("%d", r.Ticks),
			r.StartedAt.Local().Format(timeLayout),
			r.Duration().Round(time.Second).String(),
		}
	}
	return rows
}

func newSessionsTable(records []storage.SessionRecord, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(sessionColumns()),
		table.WithRows(sessionRows(records)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	return t
}

// RenderSessions renders records as a static table for non-interactive output.
func RenderSessions(records []storage.SessionRecord) string {
	if len(records) == 0 {
		return "No sessions recorded yet."
	}
	height := len(records) + 1
	return newSessionsTable(records, height, false).View()
}

// SessionsModel is the Bubble Tea model for browsing recorded SSH sessions.
type SessionsModel struct {
	store    *storage.Store
	limit    int
	records  []storage.SessionRecord
	total    int
	err      error
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates a session browser backed by store.
func NewSessionsModel(store *storage.Store, limit, width, height int) SessionsModel {
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		store:  store,
		limit:  limit,
		help:   h,
		keys:   DefaultSessionsKeyMap(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *SessionsModel) tableHeight() int {
	height := m.height - sessionsChrome
	if height < sessionsMinHeight {
		height = sessionsMinHeight
	}
	return height
}

// load reads the most recent sessions and rebuilds the table.
func (m *SessionsModel) load() {
	m.records, m.total, m.err = nil, 0, nil
	if m.store != nil {
		m.records, m.err = m.store.RecentSessions(m.limit)
		if m.err == nil {
			m.total, m.err = m.store.SessionCount()
		}
	}
	m.table = newSessionsTable(m.records, m.tableHeight(), true)
}

// Init initializes the session browser.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session browser.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session browser.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("SSH SESSIONS (%d of %d)", len(m.records), m.total)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render("Error: " + m.err.Error()))
	case len(m.records) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No sessions recorded yet.")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Total returns the number of sessions in the store.
func (m SessionsModel) Total() int {
	return m.total
}

// Records returns the currently loaded session records.
func (m SessionsModel) Records() []storage.SessionRecord {
	return m.records
}

// RunSessions runs the interactive session browser.
func RunSessions(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewSessionsModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
