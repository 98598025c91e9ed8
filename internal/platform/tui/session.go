package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model of an SSH connection. It moves
// between the menu, a running game and the scoreboard inside one
// program, since a remote session cannot start a new one.
type SessionModel struct {
	deps   registry.Deps
	scores ScoreRecorder
	source ScoreSource
	logger *log.Logger
	config core.RuntimeConfig

	screen   sessionScreen
	menu     MenuModel
	game     *Model
	board    ScoreboardModel
	quitting bool
	cleared  int
}

func NewSessionModel(deps registry.Deps, scores ScoreRecorder, source ScoreSource, cfg core.RuntimeConfig) SessionModel {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{deps: deps, scores: scores, source: source, logger: logger, config: cfg}
	m.toMenu()
	return m
}

// toMenu rebuilds the menu so Continue reflects the slot's latest save.
func (m *SessionModel) toMenu() {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(LoadSaveSummary(m.deps.Saves, m.deps.Settings, m.deps.Slot), m.config)
}

func (m SessionModel) Init() tea.Cmd { return m.menu.Init() }

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	choice := m.menu.Choice()
	switch choice {
	case ChoiceNone:
		return m, cmd
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceScores:
		m.board = NewScoreboardModel(m.source, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.board.Init()
	}

	res := MenuResult{Choice: choice, Level: m.menu.Level(), Config: m.menu.Config()}
	game, err := CreateGame(res, m.deps)
	if err != nil {
		m.logger.Error("could not start game", "choice", choice, "error", err)
		m.toMenu()
		return m, nil
	}

	// Keep the session seed so a zero seed is redrawn for every game.
	seed := m.config.Seed
	m.config = res.Config
	m.config.Seed = seed
	gm := NewModel(game, m.scores, m.logger, m.config)
	m.game = &gm
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.cleared += m.game.Cleared()
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.logger.Debug("back to menu", "run", m.game.RunID(), "cleared", m.game.Cleared())
		m.cleared += m.game.Cleared()
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// Cleared counts the levels cleared in games that have ended.
func (m SessionModel) Cleared() int { return m.cleared }

// RunSession runs the menu, games and scoreboard in one full-screen
// program and returns how many levels were cleared.
func RunSession(deps registry.Deps, scores ScoreRecorder, source ScoreSource, cfg core.RuntimeConfig) (int, error) {
	final, err := tea.NewProgram(NewSessionModel(deps, scores, source, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Cleared(), nil
	}
	return 0, nil
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.board.View()
	}
	return m.menu.View()
}
