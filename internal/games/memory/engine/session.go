// Package engine implements the memory game core: grid generation and
// restore, turn resolution, persistence and the Session facade that ties
// them together. It has no terminal or Bubble Tea dependencies.
//
// A Session is driven from a single goroutine. Delays are callbacks on a
// manual Scheduler that the caller advances every tick.
package engine

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Default store keys.
const (
	DefaultSaveKey  = "CardGameSaveData"
	DefaultLevelKey = "PlayerLevel"
)

var (
	ErrUnknownCard   = errors.New("engine: unknown card")
	ErrNotFlippable  = errors.New("engine: card cannot be flipped")
	ErrNotFlipping   = errors.New("engine: card has no flip in progress")
	ErrNotClosing    = errors.New("engine: card is not waiting to close")
	ErrLevelComplete = errors.New("engine: level complete")
)

// State holds the session counters.
type State struct {
	Score        int
	Combo        int
	Moves        int
	Lives        int
	Level        int
	TurnNumber   int
	MatchNumber  int
	TotalPairs   int
	MatchedPairs int
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Catalog  Catalog
	Rand     Random
	Saves    core.KVStore
	Settings core.SettingsStore
	Logger   *log.Logger

	SaveKey  string
	LevelKey string

	Timing config.MemoryTiming
	Rules  config.MemoryRules

	// GridSize picks the board for a level. Defaults to GridSizeForLevel.
	GridSize func(level int) (rows, columns int)

	Scheduler *Scheduler
}

// Session owns the game state and grid and exposes the commands used by
// the input layer.
type Session struct {
	catalog  Catalog
	rng      Random
	saves    core.KVStore
	settings core.SettingsStore
	logger   *log.Logger
	saveKey  string
	levelKey string
	timing   config.MemoryTiming
	rules    config.MemoryRules
	gridSize func(level int) (int, int)
	sched    *Scheduler

	state   State
	grid    Grid
	rows    int
	columns int

	pending    []int
	winPending bool
	generation uint64

	observers observers
}

// NewSession creates a session. The level is read from the settings store;
// no grid exists until LoadOrInitialize, NewGame or GenerateGrid is called.
func NewSession(opts Options) *Session {
	s := &Session{
		catalog:  opts.Catalog,
		rng:      opts.Rand,
		saves:    opts.Saves,
		settings: opts.Settings,
		logger:   opts.Logger,
		saveKey:  opts.SaveKey,
		levelKey: opts.LevelKey,
		timing:   opts.Timing,
		rules:    opts.Rules,
		gridSize: opts.GridSize,
		sched:    opts.Scheduler,
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.saves == nil {
		s.saves = nopStore{}
	}
	if s.settings == nil {
		s.settings = nopStore{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.saveKey == "" {
		s.saveKey = DefaultSaveKey
	}
	if s.levelKey == "" {
		s.levelKey = DefaultLevelKey
	}
	if s.rules == (config.MemoryRules{}) {
		s.rules = config.DefaultMemoryConfig().Rules
	}
	if s.rules.StartingLives <= 0 {
		s.rules.StartingLives = DefaultLives
	}
	if s.gridSize == nil {
		s.gridSize = GridSizeForLevel
	}
	if s.sched == nil {
		s.sched = NewScheduler()
	}

	s.state.Level = max(1, s.settings.GetInt(s.levelKey, 1))
	s.rows, s.columns = s.gridSize(s.state.Level)
	s.resetCounters()
	return s
}

func (s *Session) resetCounters() {
	s.state.Score = 0
	s.state.Combo = 0
	s.state.Moves = 0
	s.state.TurnNumber = 1
	s.state.MatchNumber = 0
	s.state.Lives = s.rules.StartingLives
}

// State returns a copy of the session counters.
func (s *Session) State() State {
	return s.state
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid {
	return s.grid.clone()
}

// Cards returns a copy of the current cards in grid order.
func (s *Session) Cards() []Card {
	return s.grid.clone().Cards
}

// Catalog returns the card faces used by this session.
func (s *Session) Catalog() Catalog {
	return s.catalog
}

// NextGridSize returns the board that the next generated grid will use.
func (s *Session) NextGridSize() (rows, columns int) {
	return s.rows, s.columns
}

// LevelComplete reports whether every pair is matched and the session is
// waiting for NextLevel.
func (s *Session) LevelComplete() bool {
	return s.winPending
}

// Scheduler returns the scheduler that runs the session's delays.
func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

// Subscribe registers fn for every event. Calling the returned function
// removes it.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	return s.observers.add(fn)
}

func (s *Session) emit(e Event) {
	s.observers.emit(e)
}

// Broadcast re-emits every counter.
func (s *Session) Broadcast() {
	s.emit(ScoreChanged{Score: s.state.Score})
	s.emit(MovesChanged{Moves: s.state.Moves})
	s.emit(LivesChanged{Lives: s.state.Lives})
	s.emit(LevelChanged{Level: s.state.Level})
	s.emit(MatchNumberChanged{MatchNumber: s.state.MatchNumber})
	s.emit(TurnNumberChanged{TurnNumber: s.state.TurnNumber})
}

// Advance moves the session clock forward, running due callbacks.
func (s *Session) Advance(dt time.Duration) {
	s.sched.Advance(dt)
}

// After schedules fn on the session clock. The callback is dropped if the
// grid is regenerated or restored before it is due.
func (s *Session) After(d time.Duration, fn func()) {
	gen := s.generation
	s.sched.After(d, func() {
		if s.generation != gen {
			return
		}
		fn()
	})
}

// LoadOrInitialize restores the saved game if there is a valid one, and
// otherwise starts a fresh game at the current level. Reports whether a
// save was restored.
func (s *Session) LoadOrInitialize() bool {
	if rec, ok := Load(s.saves, s.saveKey); ok {
		s.restore(rec)
		return true
	}
	s.logger.Debug("no usable save, starting fresh", "key", s.saveKey)
	s.initialize()
	return false
}

// NewGame discards any save and starts a fresh game at the current level.
func (s *Session) NewGame() {
	s.ClearSave()
	s.initialize()
}

func (s *Session) initialize() {
	s.resetCounters()
	s.rows, s.columns = s.gridSize(s.state.Level)
	s.Broadcast()
	s.GenerateGrid(s.rows, s.columns)
}

// NextLevel deals the grid for the current level. Called after GameWon.
func (s *Session) NextLevel() {
	s.GenerateGrid(s.rows, s.columns)
}

// GenerateGrid deals a fresh rows x columns grid and saves.
// Pending flips and scheduled callbacks for the old grid are discarded.
func (s *Session) GenerateGrid(rows, columns int) {
	s.generation++
	s.rows, s.columns = rows, columns
	s.grid = GenerateGrid(rows, columns, s.catalog, s.rng)
	if len(s.catalog) == 0 {
		s.logger.Warn("card catalog is empty, dealt an empty grid", "rows", rows, "columns", columns)
	}

	s.pending = s.pending[:0]
	s.winPending = false
	s.state.TotalPairs = s.grid.TotalPairs()
	s.state.MatchedPairs = 0
	s.state.MatchNumber = 0

	s.emit(GridDealt{Rows: rows, Columns: columns})
	s.Save() //nolint:errcheck
}

func (s *Session) restore(rec SaveRecord) {
	s.generation++
	s.state.Score = rec.Score
	s.state.Combo = rec.Combo
	s.state.Moves = rec.Moves
	s.state.Lives = rec.Lives
	s.state.TurnNumber = rec.TurnNumber

	grid, report := RestoreGrid(rec, s.catalog)
	if len(report.Substituted) > 0 {
		s.logger.Warn("save references unknown card types, substituted the first catalog face",
			"key", s.saveKey, "positions", report.Substituted)
	}
	s.grid = grid
	s.rows, s.columns = rec.Rows, rec.Columns
	s.pending = s.pending[:0]
	s.winPending = false

	s.state.TotalPairs = grid.TotalPairs()
	s.state.MatchedPairs = grid.MatchedCards() / 2
	s.state.MatchNumber = s.state.MatchedPairs

	s.logger.Info("restored saved game", "rows", rec.Rows, "columns", rec.Columns,
		"matched", s.state.MatchedPairs, "pairs", s.state.TotalPairs)
	s.emit(GridDealt{Rows: rec.Rows, Columns: rec.Columns, Restored: true})
	s.Broadcast()
}

// Save persists the current game. Failures are logged and returned.
func (s *Session) Save() error {
	raw, err := Encode(s.state, s.grid).Marshal()
	if err == nil {
		err = s.saves.Set(s.saveKey, raw)
	}
	if err != nil {
		s.logger.Warn("save failed", "key", s.saveKey, "error", err)
	}
	return err
}

// ClearSave deletes the saved game. Failures are logged and returned.
func (s *Session) ClearSave() error {
	err := s.saves.Delete(s.saveKey)
	if err != nil {
		s.logger.Warn("clear save failed", "key", s.saveKey, "error", err)
	}
	return err
}

// SetLevel persists n (at least 1) as the current level. The grid is not
// regenerated; call NewGame to play it.
func (s *Session) SetLevel(n int) {
	s.state.Level = max(1, n)
	s.persistLevel()
	s.rows, s.columns = s.gridSize(s.state.Level)
	s.emit(LevelChanged{Level: s.state.Level})
}

func (s *Session) persistLevel() {
	if err := s.settings.SetInt(s.levelKey, s.state.Level); err != nil {
		s.logger.Warn("saving level failed", "key", s.levelKey, "error", err)
	}
}

// nopStore stands in for missing stores.
type nopStore struct{}

func (nopStore) Get(string) (string, bool, error) { return "", false, nil }
func (nopStore) Set(string, string) error         { return nil }
func (nopStore) Delete(string) error              { return nil }
func (nopStore) GetInt(_ string, def int) int     { return def }
func (nopStore) SetInt(string, int) error         { return nil }
