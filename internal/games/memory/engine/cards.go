package engine

import (
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// CardType identifies a card face. Two cards form a pair when their types are equal.
type CardType int

// CardState is the lifecycle state of a card.
type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

// String returns the string representation of a CardState.
func (s CardState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is a single card on the grid. ID is its row-major grid index.
type Card struct {
	ID        int
	Type      CardType
	State     CardState
	Flippable bool
}

// Face describes how a card type looks.
type Face struct {
	Type   CardType
	Name   string
	Symbol string
	Color  core.Color
}

// Catalog is the ordered set of card faces available for dealing.
// The first entry pads odd grids and replaces unknown types on restore.
type Catalog []Face

// CatalogFromConfig builds a catalog from configured faces.
// Unknown color names render in the default color.
func CatalogFromConfig(faces []config.CardFace) Catalog {
	c := make(Catalog, 0, len(faces))
	for _, f := range faces {
		color, _ := core.ParseColor(f.Color)
		c = append(c, Face{
			Type:   CardType(f.ID),
			Name:   f.Name,
			Symbol: f.Symbol,
			Color:  color,
		})
	}
	return c
}

// Lookup returns the first face with the given type.
func (c Catalog) Lookup(t CardType) (Face, bool) {
	for _, f := range c {
		if f.Type == t {
			return f, true
		}
	}
	return Face{}, false
}
