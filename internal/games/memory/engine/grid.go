package engine

// Grid is the board: Cards are laid out row-major and len(Cards) is
// Rows*Columns, except for a grid dealt from an empty catalog which has
// no cards at all.
type Grid struct {
	Rows    int
	Columns int
	Cards   []Card
}

// GenerateGrid deals a shuffled grid. Each type is cycled from the catalog
// and added twice; an odd cell count gets one extra copy of catalog[0].
// An empty catalog (or a non-positive size) yields a grid without cards.
func GenerateGrid(rows, columns int, catalog Catalog, rng Random) Grid {
	g := Grid{Rows: rows, Columns: columns}
	if len(catalog) == 0 || rows <= 0 || columns <= 0 {
		return g
	}

	total := rows * columns
	pairs := total / 2

	pool := make([]CardType, 0, total)
	for i := 0; i < pairs; i++ {
		t := catalog[i%len(catalog)].Type
		pool = append(pool, t, t)
	}
	if len(pool) < total {
		pool = append(pool, catalog[0].Type)
	}

	shuffle(pool, rng)

	g.Cards = make([]Card, total)
	for i, t := range pool {
		g.Cards[i] = Card{ID: i, Type: t, State: Hidden, Flippable: true}
	}
	return g
}

// shuffle is a Fisher-Yates shuffle: pool[i] swaps with pool[rng(i..n-1)].
func shuffle(pool []CardType, rng Random) {
	n := len(pool)
	for i := 0; i < n; i++ {
		j := rng.IntRange(i, n-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// RestoreReport lists grid positions whose saved type was not in the
// catalog and was replaced by catalog[0].
type RestoreReport struct {
	Substituted []int
}

// RestoreGrid rebuilds a grid from a save record. Matched positions are
// created directly in the Matched state; the rest start Hidden.
// The record must have passed Decode's length checks.
func RestoreGrid(rec SaveRecord, catalog Catalog) (Grid, RestoreReport) {
	g := Grid{Rows: rec.Rows, Columns: rec.Columns}
	var report RestoreReport
	if len(catalog) == 0 {
		return g, report
	}

	total := rec.Rows * rec.Columns
	g.Cards = make([]Card, total)
	for i := 0; i < total; i++ {
		t := CardType(rec.GridCardTypes[i])
		if _, ok := catalog.Lookup(t); !ok {
			t = catalog[0].Type
			report.Substituted = append(report.Substituted, i)
		}

		c := Card{ID: i, Type: t, State: Hidden, Flippable: true}
		if rec.GridCardMatched[i] {
			c.State = Matched
			c.Flippable = false
		}
		g.Cards[i] = c
	}
	return g, report
}

// TotalPairs is the number of pairs that must be matched to clear the grid.
func (g Grid) TotalPairs() int {
	return len(g.Cards) / 2
}

// MatchedCards counts cards in the Matched state.
func (g Grid) MatchedCards() int {
	n := 0
	for _, c := range g.Cards {
		if c.State == Matched {
			n++
		}
	}
	return n
}

// Card returns a pointer to the card with the given id.
func (g Grid) Card(id int) (*Card, bool) {
	if id < 0 || id >= len(g.Cards) {
		return nil, false
	}
	return &g.Cards[id], true
}

// RowCol converts a card id to its row and column.
func (g Grid) RowCol(id int) (row, col int) {
	if g.Columns <= 0 {
		return 0, 0
	}
	return id / g.Columns, id % g.Columns
}

// Position returns the centre of card id when cards are spacing apart
// and the grid is centred on the origin. Y grows upwards, so row 0 has
// the largest y.
func (g Grid) Position(id int, spacing float64) (x, y float64) {
	row, col := g.RowCol(id)
	startX := -float64(g.Columns-1) * spacing / 2
	startY := float64(g.Rows-1) * spacing / 2
	return startX + float64(col)*spacing, startY - float64(row)*spacing
}

// clone returns a deep copy.
func (g Grid) clone() Grid {
	c := g
	if g.Cards != nil {
		c.Cards = make([]Card, len(g.Cards))
		copy(c.Cards, g.Cards)
	}
	return c
}
