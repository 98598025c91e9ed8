package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, store *storage.MemoryStore, seed int64) *Game {
	t.Helper()
	g := New(registry.Deps{
		Saves:    store,
		Settings: store,
		Config:   config.DefaultMemoryConfig(),
	})
	g.Reset(testRuntime(seed))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// idle steps the game n ticks with no input.
func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// moveTo walks the cursor to card id using movement input.
func moveTo(g *Game, id int) {
	grid := g.Session().Grid()
	row, col := grid.RowCol(id)
	for {
		cr, cc := grid.RowCol(g.cursor)
		switch {
		case cr < row:
			g.Step(input(core.ActionDown))
		case cr > row:
			g.Step(input(core.ActionUp))
		case cc < col:
			g.Step(input(core.ActionRight))
		case cc > col:
			g.Step(input(core.ActionLeft))
		default:
			return
		}
	}
}

// pairs groups card ids by type.
func pairs(g *Game) [][2]int {
	seen := make(map[engine.CardType]int)
	var out [][2]int
	for _, c := range g.Session().Cards() {
		if first, ok := seen[c.Type]; ok {
			out = append(out, [2]int{first, c.ID})
			continue
		}
		seen[c.Type] = c.ID
	}
	return out
}

func flipPair(g *Game, a, b int) {
	moveTo(g, a)
	g.Step(input(core.ActionFlip))
	moveTo(g, b)
	g.Step(input(core.ActionFlip))
	idle(g, 90) // flip, compare and close delays
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"memory", "memory_custom"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestSlotKeys(t *testing.T) {
	tests := []struct {
		mode, slot      string
		wantSave, wantLv string
	}{
		{"memory", "", "memory/CardGameSaveData", "memory/PlayerLevel"},
		{"memory", "alice", "memory@alice/CardGameSaveData", "memory@alice/PlayerLevel"},
		{"memory_custom", "", "memory_custom/CardGameSaveData", "memory_custom/PlayerLevel"},
	}
	for _, tt := range tests {
		save, level := SlotKeys(tt.mode, tt.slot)
		if save != tt.wantSave || level != tt.wantLv {
			t.Errorf("SlotKeys(%q, %q) = %q, %q", tt.mode, tt.slot, save, level)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestGame(t, storage.NewMemoryStore(), 42)
	b := newTestGame(t, storage.NewMemoryStore(), 42)

	for i := 0; i < 30; i++ {
		in := input(core.ActionRight)
		if i%3 == 0 {
			in = input(core.ActionFlip)
		}
		a.Step(in)
		b.Step(in)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if len(sa.Cards) != len(sb.Cards) {
		t.Fatalf("card counts differ: %d vs %d", len(sa.Cards), len(sb.Cards))
	}
	for i := range sa.Cards {
		if sa.Cards[i] != sb.Cards[i] {
			t.Fatalf("card %d differs: %+v vs %+v", i, sa.Cards[i], sb.Cards[i])
		}
	}
	if sa.Score != sb.Score || sa.Moves != sb.Moves || sa.Cursor != sb.Cursor {
		t.Errorf("snapshots diverged: %+v vs %+v", sa, sb)
	}
}

func TestFreshGameState(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 1)
	s := g.Snapshot()

	if s.Level != 1 || s.Rows != 2 || s.Columns != 2 {
		t.Errorf("level %d grid %dx%d, want level 1 grid 2x2", s.Level, s.Rows, s.Columns)
	}
	if s.Lives != engine.DefaultLives || s.TurnNumber != 1 || s.TotalPairs != 2 {
		t.Errorf("unexpected counters: %+v", s)
	}
	if s.State != StatePlaying {
		t.Errorf("state = %s, want %s", s.State, StatePlaying)
	}
	if g.Restored() {
		t.Error("fresh game reported as restored")
	}
}

func TestCursorStaysInGrid(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 1)

	for i := 0; i < 5; i++ {
		g.Step(input(core.ActionLeft))
		g.Step(input(core.ActionUp))
	}
	if g.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.cursor)
	}

	for i := 0; i < 5; i++ {
		g.Step(input(core.ActionRight))
		g.Step(input(core.ActionDown))
	}
	if g.cursor != 3 {
		t.Errorf("cursor = %d, want 3", g.cursor)
	}
}

func TestWinAdvancesLevel(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, store, 7)

	for _, p := range pairs(g) {
		flipPair(g, p[0], p[1])
	}
	if s := g.Snapshot(); s.State != StateResolving {
		t.Fatalf("state = %s, want %s", s.State, StateResolving)
	}
	idle(g, 120) // win announcement

	s := g.Snapshot()
	if s.State != StateLevelCleared {
		t.Fatalf("state = %s, want %s", s.State, StateLevelCleared)
	}
	st := g.State()
	if !st.GameOver || st.Level != 1 {
		t.Errorf("State() = %+v, want GameOver at level 1", st)
	}
	if st.Score != 10+20 {
		t.Errorf("score = %d, want 30", st.Score)
	}

	_, levelKey := SlotKeys("memory", "")
	if got := store.GetInt(levelKey, 0); got != 2 {
		t.Errorf("persisted level = %d, want 2", got)
	}

	g.Step(input(core.ActionFlip))
	if g.State().GameOver {
		t.Error("still GameOver after continuing")
	}
	if s := g.Snapshot(); s.Level != 2 || s.Rows != 2 || s.Columns != 2 || s.Moves != 0 {
		t.Errorf("after continue: %+v", s)
	}
}

func TestMismatchCostsLife(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 3)
	p := pairs(g)

	flipPair(g, p[0][0], p[1][0])

	s := g.Snapshot()
	if s.Lives != engine.DefaultLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives, engine.DefaultLives-1)
	}
	for _, c := range s.Cards {
		if c.State != engine.Hidden || !c.Flippable {
			t.Errorf("card %d not closed: %+v", c.ID, c)
		}
	}
	if len(g.mismatched) != 0 {
		t.Errorf("mismatch highlight left on %v", g.mismatched)
	}
}

func TestContinueRestoresSave(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, store, 5)
	p := pairs(g)
	flipPair(g, p[0][0], p[0][1])
	cards := g.Snapshot().Cards

	again := newTestGame(t, store, 99)
	if !again.Restored() {
		t.Fatal("expected the save to be restored")
	}
	s := again.Snapshot()
	if s.MatchedPairs != 1 || s.MatchNumber != 1 || s.Score != 10 {
		t.Errorf("restored counters: %+v", s)
	}
	for i, c := range s.Cards {
		if c.Type != cards[i].Type || c.State != cards[i].State {
			t.Errorf("card %d = %+v, want %+v", i, c, cards[i])
		}
	}
}

func TestCorruptSaveDealsFresh(t *testing.T) {
	store := storage.NewMemoryStore()
	saveKey, _ := SlotKeys(string(ModeCampaign), "")
	store.Set(saveKey, `{"rows":4294967296,"columns":4294967296,"gridCardTypes":[],"gridCardMatched":[]}`) //nolint:errcheck

	g := newTestGame(t, store, 3)
	if g.Restored() {
		t.Fatal("restored a save with impossible dimensions")
	}
	s := g.Snapshot()
	if s.Rows != 2 || s.Columns != 2 || len(s.Cards) != 4 {
		t.Errorf("grid %dx%d with %d cards, want a fresh 2x2 deal", s.Rows, s.Columns, len(s.Cards))
	}
	if g.tooSmall {
		t.Error("fresh 2x2 grid should fit 80x24")
	}
}

func TestFreshStartIgnoresSave(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, store, 5)
	p := pairs(g)
	flipPair(g, p[0][0], p[0][1])

	again := New(registry.Deps{Saves: store, Settings: store, Config: config.DefaultMemoryConfig()})
	again.StartFresh()
	again.Reset(testRuntime(5))
	if again.Restored() {
		t.Error("fresh start restored the save")
	}
	if s := again.Snapshot(); s.Score != 0 || s.MatchedPairs != 0 {
		t.Errorf("fresh start kept progress: %+v", s)
	}
}

func TestStartLevel(t *testing.T) {
	g := New(registry.Deps{Config: config.DefaultMemoryConfig()})
	g.StartAtLevel(11)
	g.Reset(testRuntime(1))

	s := g.Snapshot()
	if s.Level != 11 || s.Rows != 7 || s.Columns != 2 {
		t.Errorf("level %d grid %dx%d, want level 11 grid 7x2", s.Level, s.Rows, s.Columns)
	}
	if g.startLevel != 0 {
		t.Error("start level not consumed by Reset")
	}
	if g.tooSmall {
		t.Error("7x2 grid should fit 80x24")
	}
}

func TestInstanceStartOptions(t *testing.T) {
	store := storage.NewMemoryStore()
	g := New(registry.Deps{Saves: store, Settings: store, Config: config.DefaultMemoryConfig()})
	g.StartAtLevel(3)
	g.Reset(testRuntime(1))

	if s := g.Snapshot(); s.Level != 3 || s.Rows != 3 || s.Columns != 2 {
		t.Errorf("level %d grid %dx%d, want level 3 grid 3x2", s.Level, s.Rows, s.Columns)
	}

	// The option is one-shot: the next Reset continues the save.
	g.Reset(testRuntime(1))
	if !g.Restored() {
		t.Error("second Reset did not restore the save")
	}
	if s := g.Snapshot(); s.Level != 3 {
		t.Errorf("level = %d after continue, want 3", s.Level)
	}
}

func TestCustomModeClampsGrid(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	cfg.Grid = config.MemoryGrid{Rows: 9, Columns: 1}

	store := storage.NewMemoryStore()
	g := NewCustom(registry.Deps{Saves: store, Settings: store, Config: cfg})
	g.Reset(testRuntime(1))

	s := g.Snapshot()
	if s.Rows != config.MaxGridSize || s.Columns != config.MinGridSize {
		t.Errorf("grid = %dx%d, want %dx%d", s.Rows, s.Columns, config.MaxGridSize, config.MinGridSize)
	}
	if s.Mode != "memory_custom" {
		t.Errorf("mode = %s", s.Mode)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 1)

	g.Step(input(core.ActionFlip))
	g.Step(input(core.ActionPause))
	idle(g, 120)

	c := g.Snapshot().Cards[0]
	if c.State != engine.Hidden || c.Flippable {
		t.Errorf("card flipped while paused: %+v", c)
	}
	if !g.State().Paused {
		t.Error("State().Paused = false")
	}

	g.Step(input(core.ActionPause))
	idle(g, 40)
	if c := g.Snapshot().Cards[0]; c.State != engine.Revealed {
		t.Errorf("card not revealed after resume: %+v", c)
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 2)
	p := pairs(g)
	flipPair(g, p[0][0], p[0][1])
	before := g.Snapshot()

	g.Resize(20, 8)
	if g.Snapshot().State != StatePausedSmall {
		t.Error("small window not detected")
	}
	g.Step(input(core.ActionFlip))

	g.Resize(80, 24)
	after := g.Snapshot()
	if after.State != StatePlaying {
		t.Errorf("state = %s after resize back", after.State)
	}
	if after.Score != before.Score || after.MatchedPairs != before.MatchedPairs {
		t.Errorf("resize changed progress: %+v -> %+v", before, after)
	}
}

func TestTallestLevelNeedsFullHeight(t *testing.T) {
	g := New(registry.Deps{Config: config.DefaultMemoryConfig()})
	g.StartAtLevel(11) // 7x2
	g.Reset(testRuntime(1))

	tests := []struct {
		w, h  int
		small bool
	}{
		{80, 24, false},
		{80, 23, true},
		{44, 24, false},
		{43, 24, true},
	}
	for _, tc := range tests {
		g.Resize(tc.w, tc.h)
		if g.tooSmall != tc.small {
			t.Errorf("%dx%d: tooSmall = %v, want %v", tc.w, tc.h, g.tooSmall, tc.small)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore(), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{scorePrefix, livesPrefix, levelPrefix, matchPrefix, turnPrefix, movesPrefix, backPattern} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(registry.Deps{Config: config.DefaultMemoryConfig()})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected the too small message")
	}
}
