package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Grid: MemoryGrid{
			Rows:    4,
			Columns: 4,
		},
		Timing: MemoryTiming{
			CompareDelay:  500 * time.Millisecond,
			SettleDelay:   0,
			FlipDuration:  500 * time.Millisecond,
			CloseDuration: 100 * time.Millisecond,
			WinDelay:      1500 * time.Millisecond,
			ComboFlash:    time.Second,
		},
		Rules: MemoryRules{
			StartingLives:   3,
			MatchPoints:     10,
			MismatchPenalty: 2,
		},
		Catalog: []CardFace{
			{ID: 0, Name: "star", Symbol: "*", Color: "bright_yellow"},
			{ID: 1, Name: "heart", Symbol: "♥", Color: "bright_red"},
			{ID: 2, Name: "spade", Symbol: "♠", Color: "white"},
			{ID: 3, Name: "diamond", Symbol: "♦", Color: "red"},
			{ID: 4, Name: "club", Symbol: "♣", Color: "bright_green"},
			{ID: 5, Name: "note", Symbol: "♪", Color: "bright_magenta"},
			{ID: 6, Name: "sun", Symbol: "☼", Color: "orange"},
			{ID: 7, Name: "moon", Symbol: "☾", Color: "bright_cyan"},
			{ID: 8, Name: "anchor", Symbol: "⚓", Color: "blue"},
			{ID: 9, Name: "bolt", Symbol: "ϟ", Color: "yellow"},
			{ID: 10, Name: "flower", Symbol: "✿", Color: "magenta"},
			{ID: 11, Name: "key", Symbol: "⚷", Color: "cyan"},
			{ID: 12, Name: "skull", Symbol: "☠", Color: "gray"},
			{ID: 13, Name: "crown", Symbol: "♛", Color: "bright_blue"},
			{ID: 14, Name: "snow", Symbol: "❄", Color: "bright_white"},
			{ID: 15, Name: "cross", Symbol: "✚", Color: "green"},
			{ID: 16, Name: "yin", Symbol: "☯", Color: "bright_white"},
			{ID: 17, Name: "atom", Symbol: "⚛", Color: "bright_cyan"},
		},
	}
}

// DefaultYAML is the embedded memory.yaml the defaults are built from,
// comments included. It is a starting point for a user config file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
