package memory

import "github.com/vovakirdan/tui-memory/internal/games/memory/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateResolving    GameStateType = "resolving" // last pair matched, win pending
	StateLevelCleared GameStateType = "level_cleared"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Cursor int
	State  GameStateType

	Level        int
	Score        int
	Lives        int
	Moves        int
	Combo        int
	TurnNumber   int
	MatchNumber  int
	TotalPairs   int
	MatchedPairs int

	Rows    int
	Columns int
	Cards   []engine.Card
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.won:
		state = StateLevelCleared
	case g.session.LevelComplete():
		state = StateResolving
	}

	st := g.session.State()
	grid := g.session.Grid()
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Cursor:       g.cursor,
		State:        state,
		Level:        st.Level,
		Score:        st.Score,
		Lives:        st.Lives,
		Moves:        st.Moves,
		Combo:        st.Combo,
		TurnNumber:   st.TurnNumber,
		MatchNumber:  st.MatchNumber,
		TotalPairs:   st.TotalPairs,
		MatchedPairs: st.MatchedPairs,
		Rows:         grid.Rows,
		Columns:      grid.Columns,
		Cards:        grid.Cards,
	}
}
