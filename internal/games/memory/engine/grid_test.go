package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeCounts(g Grid) map[CardType]int {
	counts := make(map[CardType]int)
	for _, c := range g.Cards {
		counts[c.Type]++
	}
	return counts
}

func TestGenerateGridPairing(t *testing.T) {
	for rows := 2; rows <= 7; rows++ {
		for cols := 2; cols <= 6; cols++ {
			g := GenerateGrid(rows, cols, testCatalog, NewRand(int64(rows*10+cols)))
			require.Len(t, g.Cards, rows*cols)

			odd := 0
			for typ, n := range typeCounts(g) {
				if n%2 == 1 {
					odd++
					assert.Equal(t, testCatalog[0].Type, typ, "only catalog[0] may appear an odd number of times")
				}
			}
			if rows*cols%2 == 0 {
				assert.Zero(t, odd, "%dx%d", rows, cols)
			} else {
				assert.Equal(t, 1, odd, "%dx%d", rows, cols)
			}

			for i, c := range g.Cards {
				assert.Equal(t, i, c.ID)
				assert.Equal(t, Hidden, c.State)
				assert.True(t, c.Flippable)
			}
		}
	}
}

func TestGenerateGridPoolOrder(t *testing.T) {
	// 3x3 from two faces: pairs cycle 0,1,0,1 then pad with 0.
	g := GenerateGrid(3, 3, testCatalog[:2], firstRand{})

	got := make([]CardType, len(g.Cards))
	for i, c := range g.Cards {
		got[i] = c.Type
	}
	assert.Equal(t, []CardType{0, 0, 1, 1, 0, 0, 1, 1, 0}, got)
	assert.Equal(t, 4, g.TotalPairs())
}

func TestGenerateGridIsPermutation(t *testing.T) {
	pool := GenerateGrid(6, 6, testCatalog, firstRand{})
	shuffled := GenerateGrid(6, 6, testCatalog, NewRand(42))

	sortedTypes := func(g Grid) []int {
		out := make([]int, len(g.Cards))
		for i, c := range g.Cards {
			out[i] = int(c.Type)
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, sortedTypes(pool), sortedTypes(shuffled))
	assert.NotEqual(t, pool.Cards, shuffled.Cards, "seeded shuffle should move cards")

	again := GenerateGrid(6, 6, testCatalog, NewRand(42))
	assert.Equal(t, shuffled.Cards, again.Cards, "same seed deals the same grid")
}

func TestGenerateGridEmptyCatalog(t *testing.T) {
	g := GenerateGrid(4, 4, nil, NewRand(1))
	assert.Empty(t, g.Cards)
	assert.Equal(t, 0, g.TotalPairs())
	assert.Equal(t, 4, g.Rows)
}

func TestGridPosition(t *testing.T) {
	g := GenerateGrid(2, 3, testCatalog, firstRand{})

	tests := []struct {
		id   int
		x, y float64
	}{
		{0, -2, 1},
		{1, 0, 1},
		{2, 2, 1},
		{3, -2, -1},
		{5, 2, -1},
	}
	for _, tc := range tests {
		x, y := g.Position(tc.id, 2)
		assert.InDelta(t, tc.x, x, 1e-9, "x of %d", tc.id)
		assert.InDelta(t, tc.y, y, 1e-9, "y of %d", tc.id)
	}

	row, col := g.RowCol(4)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestRestoreGrid(t *testing.T) {
	rec := SaveRecord{
		Rows:            2,
		Columns:         2,
		GridCardTypes:   []int{1, 42, 1, 3},
		GridCardMatched: []bool{true, false, true, false},
	}

	g, report := RestoreGrid(rec, testCatalog)
	require.Len(t, g.Cards, 4)
	assert.Equal(t, []int{1}, report.Substituted)
	assert.Equal(t, testCatalog[0].Type, g.Cards[1].Type)

	assert.Equal(t, Matched, g.Cards[0].State)
	assert.False(t, g.Cards[0].Flippable)
	assert.Equal(t, Hidden, g.Cards[3].State)
	assert.True(t, g.Cards[3].Flippable)
	assert.Equal(t, 2, g.MatchedCards())
}

func TestGridSizeForLevel(t *testing.T) {
	tests := []struct {
		level      int
		rows, cols int
	}{
		{-5, 2, 2},
		{0, 2, 2},
		{1, 2, 2},
		{3, 3, 2},
		{11, 7, 2},
		{13, 4, 4},
		{21, 6, 5},
		{22, 6, 6},
		{100, 6, 6},
	}
	for _, tc := range tests {
		r, c := GridSizeForLevel(tc.level)
		assert.Equal(t, tc.rows, r, "rows for level %d", tc.level)
		assert.Equal(t, tc.cols, c, "columns for level %d", tc.level)
	}
	assert.Equal(t, 22, LevelCount())
}

func TestNewRandIntRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 200; i++ {
		v := r.IntRange(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 4, r.IntRange(4, 4))
	assert.Equal(t, 4, r.IntRange(4, 2))
}
