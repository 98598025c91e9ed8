package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

const (
	boardLimit      = 100
	statsPanelWidth = 26
	runIDWidth      = 8
)

var (
	boardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreSource provides the scores and stats shown on the scoreboard.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

type boardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Back, k.Help}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Mode}, {k.Back, k.Quit, k.Help}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Mode:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch mode")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ScoreboardModel lists the best cleared levels of one game mode at a
// time, with a stats panel for that mode.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	source ScoreSource
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the board on the first registered mode.
// source may be nil, in which case every mode shows as empty.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		source: source,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Level", Width: 5},
			{Title: "Run", Width: runIDWidth},
			{Title: "Cleared", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches scores and stats for the selected mode. Source errors
// show as an empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.source != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.source.TopScores(id, boardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.source.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		run := s.RunID
		if len(run) > runIDWidth {
			run = run[:runIDWidth]
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			run,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			step := 1
			if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
				step = -1
			}
			m.switchMode(step)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, 0, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs = append(tabs, boardActiveTab.Render(g.Title))
		} else {
			tabs = append(tabs, boardTab.Render(g.Title))
		}
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardMuted.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nClear a level to set a high score!")
	}

	content := boardBorder.Render(body)
	if m.width >= lipgloss.Width(content)+statsPanelWidth+6 {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.statsPanel())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitle.Render(centerText("HIGH SCORES", m.width)),
		centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width),
		"",
		content,
		boardMuted.Render(m.help.View(m.keys)),
	)
}

// statsPanel summarises every recorded level of the selected mode.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardBorder.Width(statsPanelWidth).Render(boardMuted.Render("No stats yet"))
	}
	lines := []string{
		boardTitle.Render("Stats"),
		fmt.Sprintf("Levels cleared  %d", m.stats.GamesCount),
		fmt.Sprintf("Best score      %d", m.stats.HighScore),
		fmt.Sprintf("Furthest level  %d", m.stats.BestLevel),
		fmt.Sprintf("Average score   %.0f", m.stats.AvgScore),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "Last played     "+m.stats.LastPlayed.Format("Jan 02"))
	}
	return boardBorder.Width(statsPanelWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }
func (m ScoreboardModel) IsQuitting() bool  { return m.quitting }
