// Package memory adapts the memory engine to the platform Game interface:
// it maps input to cursor moves and flips, drives the session clock from
// the fixed tick, and renders the grid.
package memory

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Mode selects where the grid size comes from.
type Mode string

const (
	ModeCampaign Mode = "memory"        // grid size from the level table
	ModeCustom   Mode = "memory_custom" // grid size from configuration
)

// Game implements the memory matching game.
type Game struct {
	mode   Mode
	deps   registry.Deps
	cfg    config.MemoryConfig
	logger *log.Logger

	session     *engine.Session
	animator    *engine.Animator
	unsubscribe func()

	tick uint64
	dt   time.Duration

	screenW int
	screenH int

	// One-shot start options consumed by Reset.
	startLevel int
	fresh      bool

	cursor     int
	paused     bool
	tooSmall   bool
	restored   bool
	mismatched map[int]bool

	// Set when GameWon arrives; cleared by the next deal.
	won      bool
	wonLevel int
	wonScore int

	comboText  string
	comboUntil time.Duration
}

// StartAtLevel makes the next Reset start a new campaign game at level.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// StartFresh makes the next Reset discard the save.
func (g *Game) StartFresh() {
	g.fresh = true
}

// New creates a campaign mode game.
func New(deps registry.Deps) *Game {
	return &Game{mode: ModeCampaign, deps: deps}
}

// NewCustom creates a custom grid game.
func NewCustom(deps registry.Deps) *Game {
	return &Game{mode: ModeCustom, deps: deps}
}

func init() {
	registry.Register(string(ModeCampaign), "Memory", func(d registry.Deps) registry.Game {
		return New(d)
	})
	registry.Register(string(ModeCustom), "Memory (Custom Grid)", func(d registry.Deps) registry.Game {
		return NewCustom(d)
	})
}

// SlotKeys returns the save and level keys for a mode and save slot.
func SlotKeys(mode, slot string) (saveKey, levelKey string) {
	prefix := mode
	if slot != "" {
		prefix += "@" + slot
	}
	return prefix + "/" + engine.DefaultSaveKey, prefix + "/" + engine.DefaultLevelKey
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCustom {
		return "Memory (Custom Grid)"
	}
	return "Memory"
}

// Reset builds a new session and restores the save, unless a fresh start
// or a start level was requested.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.animator.Stop()
	}

	cfg = cfg.WithDefaults()
	g.dt = time.Second / time.Duration(cfg.TickRate)
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = 0
	g.paused = false
	g.won = false
	g.comboText = ""
	g.mismatched = make(map[int]bool)

	g.cfg = g.deps.Config
	if len(g.cfg.Catalog) == 0 && g.cfg.Timing == (config.MemoryTiming{}) {
		g.cfg = config.DefaultMemoryConfig()
	}
	g.logger = g.deps.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	saveKey, levelKey := SlotKeys(g.ID(), g.deps.Slot)
	opts := engine.Options{
		Catalog:  engine.CatalogFromConfig(g.cfg.Catalog),
		Rand:     engine.NewRand(cfg.Seed),
		Saves:    g.deps.Saves,
		Settings: g.deps.Settings,
		Logger:   g.logger.WithPrefix(g.ID()),
		SaveKey:  saveKey,
		LevelKey: levelKey,
		Timing:   g.cfg.Timing,
		Rules:    g.cfg.Rules,
	}
	if g.mode == ModeCustom {
		rows, cols := g.cfg.ClampedGrid()
		opts.GridSize = func(int) (int, int) { return rows, cols }
	}

	g.session = engine.NewSession(opts)
	g.animator = engine.NewAnimator(g.session, g.cfg.Timing.FlipDuration, g.cfg.Timing.CloseDuration)
	g.unsubscribe = g.session.Subscribe(g.handle)

	level, fresh := g.startLevel, g.fresh
	g.startLevel, g.fresh = 0, false

	switch {
	case g.mode == ModeCampaign && level > 0:
		g.session.SetLevel(level)
		g.session.NewGame()
		g.restored = false
	case fresh:
		g.session.NewGame()
		g.restored = false
	default:
		g.restored = g.session.LoadOrInitialize()
	}

	g.checkScreenSize()
}

// Session exposes the underlying session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// handle keeps presentation state in sync with session events.
func (g *Game) handle(e engine.Event) {
	switch e := e.(type) {
	case engine.GridDealt:
		g.won = false
		g.comboText = ""
		clear(g.mismatched)
		if g.cursor >= e.Rows*e.Columns {
			g.cursor = 0
		}
		g.checkScreenSize()
	case engine.ComboChanged:
		g.comboText = comboLabel(e.Combo)
		g.comboUntil = g.session.Scheduler().Now() + g.cfg.Timing.ComboFlash
	case engine.CardsMismatched:
		g.mismatched[e.A] = true
		g.mismatched[e.B] = true
	case engine.CardClosed:
		delete(g.mismatched, e.CardID)
	case engine.GameWon:
		g.won = true
		g.wonLevel = e.Level
		g.wonScore = e.Score
	}
}

// Resize adapts to a new terminal size without touching game progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the current grid.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minHUDWidth
	if g.tooSmall || g.session == nil {
		return
	}
	grid := g.session.Grid()
	if len(grid.Cards) == 0 {
		return
	}

	// Cards run row-major, so the first and last span the whole layout.
	first, last := g.cardRect(grid, 0), g.cardRect(grid, len(grid.Cards)-1)
	cards := core.NewRect(first.X, first.Y-hudHeight, last.Right()-first.X, last.Bottom()-first.Y)
	g.tooSmall = !cards.Within(g.screenW, g.screenH-hudHeight-footerHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNewGame) {
		g.session.NewGame()
		g.cursor = 0
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionFlip) {
		switch {
		case g.won:
			g.session.NextLevel()
		case g.session.LevelComplete():
			// Waiting for the win announcement.
		default:
			g.session.RequestFlip(g.cursor) //nolint:errcheck // face-up cards just ignore the press
		}
	}

	g.session.Advance(g.dt)
	if g.comboText != "" && g.session.Scheduler().Now() >= g.comboUntil {
		g.comboText = ""
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor one card, staying inside the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	grid := g.session.Grid()
	if len(grid.Cards) == 0 {
		return
	}
	row, col := grid.RowCol(g.cursor)
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	row = core.Clamp(row, 0, grid.Rows-1)
	col = core.Clamp(col, 0, grid.Columns-1)
	g.cursor = row*grid.Columns + col
}

// State returns the current game state. GameOver is reported while the
// level complete panel is showing so the platform records the score once.
func (g *Game) State() core.GameState {
	st := g.session.State()
	level := st.Level
	if g.won {
		level = g.wonLevel
	}
	return core.GameState{
		Score:    st.Score,
		Level:    level,
		GameOver: g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Restored reports whether the last Reset resumed a saved game.
func (g *Game) Restored() bool {
	return g.restored
}
