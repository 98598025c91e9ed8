package config

import "time"

// ApplyMemoryPreset modifies the timing based on a difficulty preset.
// Presets only change how long cards stay visible; scoring and lives are
// left alone so scores stay comparable.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.CompareDelay = 800 * time.Millisecond
		cfg.Timing.SettleDelay = 700 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.CompareDelay = 300 * time.Millisecond
		cfg.Timing.SettleDelay = 0
		cfg.Timing.FlipDuration = 300 * time.Millisecond
	}
}
