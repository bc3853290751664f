package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Run    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Run, k.Delete, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "re-simulate"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for browsing the replay journal.
type ReplaysModel struct {
	store    *storage.Store
	cfg      config.FlappyConfig
	limit    int
	entries  []storage.ReplaySummary
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	status   string
	width    int
	height   int
	quitting bool
}

// NewReplaysModel creates a replay browser showing up to limit runs.
func NewReplaysModel(store *storage.Store, cfg config.FlappyConfig, limit, width, height int) ReplaysModel {
	m := ReplaysModel{
		store:  store,
		cfg:    cfg,
		limit:  limit,
		keys:   DefaultReplaysKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 10},
		{Title: "Date", Width: 14},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Flaps", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, status and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the entries from the journal.
func (m *ReplaysModel) load() {
	m.entries = nil
	if m.store != nil {
		entries, err := m.store.RecentReplays(m.limit)
		if err != nil {
			m.status = err.Error()
		} else {
			m.entries = entries
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current entries.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			ShortID(e.RunID),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%d", e.Ticks),
			e.Duration().Truncate(100 * time.Millisecond).String(),
			fmt.Sprintf("%d", e.Flaps),
		}
	}
	m.table.SetRows(rows)
}

// selected returns the entry under the cursor.
func (m ReplaysModel) selected() (storage.ReplaySummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplaySummary{}, false
	}
	return m.entries[i], true
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Run):
			m.status = m.simulateSelected()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.status = m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// simulateSelected replays the selected run and describes the outcome.
func (m ReplaysModel) simulateSelected() string {
	e, ok := m.selected()
	if !ok {
		return ""
	}
	r, err := m.store.Replay(e.RunID)
	if err != nil {
		return err.Error()
	}
	return DescribeResult(flappy.Simulate(m.cfg, r, 0))
}

// deleteSelected removes the selected run from the journal.
func (m *ReplaysModel) deleteSelected() string {
	e, ok := m.selected()
	if !ok {
		return ""
	}
	if err := m.store.DeleteReplay(e.RunID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err.Error()
	}
	m.load()
	return fmt.Sprintf("Deleted %s", ShortID(e.RunID))
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RECENT RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(m.status))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to record one!")
	}
	return m.table.View()
}

// Status returns the last status line.
func (m ReplaysModel) Status() string {
	return m.status
}

// Entries returns the runs currently listed.
func (m ReplaysModel) Entries() []storage.ReplaySummary {
	return m.entries
}

// ShortID returns the first eight characters of a run id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// DescribeResult formats a simulated run for display.
func DescribeResult(r flappy.Result) string {
	outcome := "still running"
	if r.Ended {
		outcome = "ended"
	}
	return fmt.Sprintf("Run %s: score %d (%d obstacles) after %d ticks, %s",
		ShortID(r.RunID), r.Pairs, r.Obstacles, r.Ticks, outcome)
}

// RunReplays runs the replay browser.
func RunReplays(store *storage.Store, cfg config.FlappyConfig, limit, width, height int) error {
	p := tea.NewProgram(
		NewReplaysModel(store, cfg, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
