package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// fakeGame is a scripted registry.Game.
type fakeGame struct {
	resets  int
	resized [2]int
	steps   int
	state   core.GameState
	last    core.InputFrame
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.state}
}

type fakeScores struct {
	calls []fakeScore
	err   error
}

type fakeScore struct {
	gameID       string
	score, level int
	runID        string
}

func (f *fakeScores) SaveScore(gameID string, score, level int, runID string) (int64, error) {
	f.calls = append(f.calls, fakeScore{gameID, score, level, runID})
	return int64(len(f.calls)), f.err
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{RunID: m.RunID()})
	return next.(Model)
}

func press(m Model, key string) (Model, tea.Cmd) {
	next, cmd := m.Update(keyMsg(key))
	return next.(Model), cmd
}

func TestModelSavesScoreOncePerWin(t *testing.T) {
	game := &fakeGame{}
	scores := &fakeScores{}
	m := NewModel(game, scores, nil, testConfig())

	m = tick(m)
	if len(scores.calls) != 0 {
		t.Fatal("score saved while playing")
	}

	game.state = core.GameState{Score: 30, Level: 1, GameOver: true}
	for range 5 {
		m = tick(m)
	}
	if len(scores.calls) != 1 {
		t.Fatalf("saved %d times, want 1", len(scores.calls))
	}
	got := scores.calls[0]
	if got.gameID != "fake" || got.score != 30 || got.level != 1 || got.runID != m.RunID() {
		t.Errorf("saved %+v", got)
	}

	// Continue to the next level and win again.
	game.state = core.GameState{Score: 30, Level: 2}
	m = tick(m)
	game.state = core.GameState{Score: 70, Level: 2, GameOver: true}
	m = tick(m)
	if len(scores.calls) != 2 || scores.calls[1].level != 2 || scores.calls[1].runID != got.runID {
		t.Errorf("second win: %+v", scores.calls)
	}
	if m.Cleared() != 2 {
		t.Errorf("Cleared() = %d, want 2", m.Cleared())
	}
}

func TestModelScoreErrorIsNotFatal(t *testing.T) {
	game := &fakeGame{state: core.GameState{Score: 10, Level: 1, GameOver: true}}
	scores := &fakeScores{err: errors.New("disk full")}
	m := NewModel(game, scores, nil, testConfig())

	m = tick(m)
	m = tick(m)
	if len(scores.calls) != 1 {
		t.Errorf("saved %d times, want 1", len(scores.calls))
	}
	if game.steps != 2 {
		t.Errorf("steps = %d, want 2", game.steps)
	}
}

func TestModelPassesInputOnce(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testConfig())

	m, _ = press(m, " ")
	m = tick(m)
	if !game.last.Has(core.ActionFlip) {
		t.Error("flip not delivered")
	}
	m = tick(m)
	if game.last.Has(core.ActionFlip) {
		t.Error("input not cleared after the tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testConfig())

	next, cmd := m.Update(TickMsg{RunID: "other"})
	if cmd != nil || game.steps != 0 {
		t.Error("stale tick stepped the game")
	}
	_ = next
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testConfig())
	m, cmd := press(m, "esc")
	if !m.BackToMenu() {
		t.Error("esc did not request the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}

	m = NewModel(&fakeGame{}, nil, nil, testConfig())
	m.exitOnBack = true
	if _, cmd = press(m, "b"); cmd == nil {
		t.Error("standalone model should quit on back")
	}

	m = NewModel(&fakeGame{}, nil, nil, testConfig())
	m, cmd = press(m, "q")
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 0 {
		t.Error("resize reset a Resizer game")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}
