package engine

import (
	"encoding/json"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// DefaultLives is the life count of a fresh game and of a restored game
// whose saved lives were exhausted.
const DefaultLives = 3

// SaveRecord is the persisted snapshot of a game in progress.
type SaveRecord struct {
	Rows            int    `json:"rows"`
	Columns         int    `json:"columns"`
	Score           int    `json:"score"`
	Combo           int    `json:"combo"`
	Moves           int    `json:"moves"`
	Lives           int    `json:"lives"`
	TurnNumber      int    `json:"turnNumber"`
	MatchNumber     int    `json:"matchNumber"`
	GridCardTypes   []int  `json:"gridCardTypes"`
	GridCardMatched []bool `json:"gridCardMatched"`
}

// Encode flattens session state and grid into a SaveRecord.
func Encode(st State, g Grid) SaveRecord {
	rec := SaveRecord{
		Rows:            g.Rows,
		Columns:         g.Columns,
		Score:           st.Score,
		Combo:           st.Combo,
		Moves:           st.Moves,
		Lives:           st.Lives,
		TurnNumber:      st.TurnNumber,
		MatchNumber:     st.MatchNumber,
		GridCardTypes:   make([]int, len(g.Cards)),
		GridCardMatched: make([]bool, len(g.Cards)),
	}
	for i, c := range g.Cards {
		rec.GridCardTypes[i] = int(c.Type)
		rec.GridCardMatched[i] = c.State == Matched
	}
	return rec
}

// Marshal renders the record as JSON.
func (r SaveRecord) Marshal() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a saved record. It reports false for malformed JSON,
// sides outside [1, MaxGridSide], or card arrays whose length differs
// from rows*columns. Saved lives of zero or less come back as DefaultLives.
func Decode(raw string) (SaveRecord, bool) {
	var rec SaveRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return SaveRecord{}, false
	}
	if side := MaxGridSide(); rec.Rows <= 0 || rec.Columns <= 0 || rec.Rows > side || rec.Columns > side {
		return SaveRecord{}, false
	}
	cells := rec.Rows * rec.Columns
	if len(rec.GridCardTypes) != cells || len(rec.GridCardMatched) != cells {
		return SaveRecord{}, false
	}
	if rec.Lives <= 0 {
		rec.Lives = DefaultLives
	}
	return rec, true
}

// Load reads and decodes the record under key. A missing key or a store
// error reports false.
func Load(store core.KVStore, key string) (SaveRecord, bool) {
	if store == nil {
		return SaveRecord{}, false
	}
	raw, ok, err := store.Get(key)
	if err != nil || !ok {
		return SaveRecord{}, false
	}
	return Decode(raw)
}
