// Package config provides YAML-based game configuration loading and
// difficulty management for the memory game.
package config

import "time"

// Grid size limits for configured (custom) grids.
const (
	MinGridSize = 2
	MaxGridSize = 6
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Grid    MemoryGrid   `yaml:"grid"`
	Timing  MemoryTiming `yaml:"timing"`
	Rules   MemoryRules  `yaml:"rules"`
	Catalog []CardFace   `yaml:"catalog"`
}

// MemoryGrid is the board used by the custom mode.
// Campaign mode derives its grid from the level table instead.
type MemoryGrid struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// MemoryTiming defines the delays of the flip protocol.
// Values are Go durations in YAML ("500ms", "1.5s").
type MemoryTiming struct {
	CompareDelay  time.Duration `yaml:"compare_delay"`  // second flip -> comparison
	SettleDelay   time.Duration `yaml:"settle_delay"`   // mismatch -> cards start closing
	FlipDuration  time.Duration `yaml:"flip_duration"`  // flip animation
	CloseDuration time.Duration `yaml:"close_duration"` // close animation
	WinDelay      time.Duration `yaml:"win_delay"`      // last match -> GameWon
	ComboFlash    time.Duration `yaml:"combo_flash"`    // how long "Combo xN" stays on screen
}

// MemoryRules defines scoring and lives.
type MemoryRules struct {
	StartingLives   int `yaml:"starting_lives"`
	MatchPoints     int `yaml:"match_points"`     // multiplied by the combo
	MismatchPenalty int `yaml:"mismatch_penalty"` // score never drops below zero
}

// CardFace is one entry of the card catalog.
type CardFace struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

// ClampedGrid returns the configured grid with both sides clamped to
// [MinGridSize, MaxGridSize].
func (c MemoryConfig) ClampedGrid() (rows, columns int) {
	return clamp(c.Grid.Rows, MinGridSize, MaxGridSize), clamp(c.Grid.Columns, MinGridSize, MaxGridSize)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
// Empty input maps to DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
