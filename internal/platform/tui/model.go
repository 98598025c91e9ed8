package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// ScoreRecorder stores the score of every cleared level.
type ScoreRecorder interface {
	SaveScore(gameID string, score, level int, runID string) (int64, error)
}

// Model drives one game: key presses collect into an input frame, and
// every tick steps the game once with that frame. It runs standalone
// through Run and inside SSH sessions.
type Model struct {
	game   registry.Game
	screen *core.Screen
	scores ScoreRecorder
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	runID   string
	pending core.InputFrame
	last    core.GameState

	// A cleared level reports GameOver until the player moves on;
	// recorded stops it being stored twice.
	recorded bool
	cleared  int

	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewModel wraps game for Bubble Tea. scores and logger may be nil.
func NewModel(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores: scores,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		runID:  uuid.NewString(),
	}
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "run", m.runID)
	return tickCmd(m.config.TickRate, m.runID)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.WindowSizeMsg:
		m.onResize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		// Ticks from an earlier run of this model would double the rate.
		if msg.RunID != m.runID || m.backToMenu || m.quitting {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.config.TickRate, m.runID)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.pending) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.pending.Has(core.ActionBack) {
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

// onResize keeps progress for games that can re-layout and restarts
// the rest, unless a finished round is still on screen.
func (m *Model) onResize(width, height int) {
	m.config.ScreenW, m.config.ScreenH = width, height
	m.screen.Resize(width, height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(width, height)
		return
	}
	if !m.last.GameOver {
		m.game.Reset(m.config)
	}
}

func (m *Model) step() {
	m.last = m.game.Step(m.pending).State
	m.pending.Clear()

	switch {
	case m.last.GameOver && !m.recorded:
		m.recorded = true
		m.cleared++
		m.recordScore()
	case !m.last.GameOver:
		m.recorded = false
	}
}

func (m Model) recordScore() {
	if m.scores == nil || m.last.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(m.game.ID(), m.last.Score, m.last.Level, m.runID); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.last.Score, "level", m.last.Level)
}

// saveScreenshot writes the current frame as plain text under
// ~/.memory/screenshots. Failures are logged and play continues.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".memory", "screenshots")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m Model) IsQuitting() bool { return m.quitting }
func (m Model) BackToMenu() bool { return m.backToMenu }

// RunID identifies this play session in the score table.
func (m Model) RunID() string { return m.runID }

// Cleared counts the levels cleared since the model started.
func (m Model) Cleared() int { return m.cleared }

// RunResult describes how a standalone game ended.
type RunResult struct {
	BackToMenu bool
	RunID      string
	Cleared    int
}

// Run plays game in its own full-screen program until the player quits
// or goes back to the menu.
func Run(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewModel(game, scores, logger, cfg)
	model.exitOnBack = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return RunResult{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return RunResult{RunID: model.runID}, nil
	}
	return RunResult{BackToMenu: fm.backToMenu, RunID: fm.runID, Cleared: fm.cleared}, nil
}
