package engine

import "github.com/vovakirdan/tui-memory/internal/config"

// GridSize is a rows x columns board size.
type GridSize struct {
	Rows    int
	Columns int
}

// Levels maps level-1 to the campaign board size. Levels past the end
// reuse the last entry.
var Levels = []GridSize{
	{2, 2}, {2, 2}, {3, 2}, {3, 2}, {4, 2}, {4, 2}, {5, 2}, {5, 2},
	{4, 3}, {4, 3}, {7, 2}, {7, 2}, {4, 4}, {4, 4}, {6, 3}, {6, 3},
	{5, 4}, {5, 4}, {6, 4}, {6, 4}, {6, 5}, {6, 6},
}

// GridSizeForLevel returns the board size for a campaign level.
func GridSizeForLevel(level int) (rows, columns int) {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i > len(Levels)-1 {
		i = len(Levels) - 1
	}
	return Levels[i].Rows, Levels[i].Columns
}

// LevelCount returns the number of distinct campaign levels.
func LevelCount() int {
	return len(Levels)
}

// MaxGridSide is the longest side any campaign level or custom grid can
// have. Saved records with a longer side are corrupt.
func MaxGridSide() int {
	side := config.MaxGridSize
	for _, l := range Levels {
		side = max(side, l.Rows, l.Columns)
	}
	return side
}
