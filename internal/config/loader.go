package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// LoadMemory returns the card game config. An explicit path must exist
// and parse. Otherwise the first readable, valid file of
// ~/.memory/configs/memory.yaml and ./configs/memory.yaml wins, and the
// embedded defaults are used when neither is. Keys a file omits keep
// their default values.
func LoadMemory(customPath string) (MemoryConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMemoryConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultMemoryConfig()
	if err := decodeMemory(defaultMemoryYAML, &cfg); err != nil {
		return DefaultMemoryConfig(), nil
	}
	return cfg, nil
}

// UserConfigPath is where LoadMemory first looks for a config file.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home: %w", err)
	}
	return filepath.Join(home, ".memory", "configs", "memory.yaml"), nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p, err := UserConfigPath(); err == nil {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "memory.yaml"))
}

func loadFile(path string) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decodeMemory(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeMemory unmarshals over cfg. A file that lists a catalog replaces
// the default catalog entirely.
func decodeMemory(data []byte, cfg *MemoryConfig) error {
	parsed := MemoryConfig{Grid: cfg.Grid, Timing: cfg.Timing, Rules: cfg.Rules}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	if len(parsed.Catalog) == 0 {
		parsed.Catalog = cfg.Catalog
	}
	*cfg = parsed
	return nil
}

// Validate rejects configs the game cannot play: negative delays or
// scores, duplicate card ids, and faces without a symbol. Grid sizes are
// clamped by ClampedGrid instead of rejected.
func (c MemoryConfig) Validate() error {
	t := c.Timing
	for name, d := range map[string]int64{
		"compare_delay":  int64(t.CompareDelay),
		"settle_delay":   int64(t.SettleDelay),
		"flip_duration":  int64(t.FlipDuration),
		"close_duration": int64(t.CloseDuration),
		"win_delay":      int64(t.WinDelay),
		"combo_flash":    int64(t.ComboFlash),
	} {
		if d < 0 {
			return fmt.Errorf("%w: timing.%s is negative", ErrInvalid, name)
		}
	}
	if c.Rules.StartingLives < 0 || c.Rules.MatchPoints < 0 || c.Rules.MismatchPenalty < 0 {
		return fmt.Errorf("%w: rules must not be negative", ErrInvalid)
	}

	seen := make(map[int]bool, len(c.Catalog))
	for _, face := range c.Catalog {
		if seen[face.ID] {
			return fmt.Errorf("%w: card id %d appears twice", ErrInvalid, face.ID)
		}
		seen[face.ID] = true
		if face.Symbol == "" {
			return fmt.Errorf("%w: card %d has no symbol", ErrInvalid, face.ID)
		}
	}
	return nil
}
