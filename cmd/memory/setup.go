package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// setDefault replaces a flag's default value. Empty values are ignored.
func setDefault(f *pflag.Flag, value string) {
	if f == nil || value == "" {
		return
	}
	if err := f.Value.Set(value); err != nil {
		return
	}
	f.DefValue = value
}

// stores holds the opened storage for one command.
type stores struct {
	scores *storage.Store // nil when the database could not be opened
	saves  storage.SaveBackend
}

// openStores opens the score database and the configured save backend.
// A missing database downgrades sqlite saves to memory so the game still runs.
func openStores(logger *log.Logger) (*stores, error) {
	s := &stores{}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
	} else {
		s.scores = db
	}

	kind := flagSaves
	if kind == storage.BackendSQLite && s.scores == nil {
		fmt.Fprintln(os.Stderr, "Warning: progress will not be saved")
		kind = storage.BackendMemory
	}

	s.saves, err = storage.OpenSaves(kind, s.scores, flagRedisURL)
	if err != nil {
		s.Close()
		return nil, err
	}
	logger.Debug("storage ready", "saves", kind, "db", flagDBPath)
	return s, nil
}

// recorder returns the score store, or a nil interface without one.
func (s *stores) recorder() tui.ScoreRecorder {
	if s.scores == nil {
		return nil
	}
	return s.scores
}

// source returns the score store for the scoreboard, or a nil interface.
func (s *stores) source() tui.ScoreSource {
	if s.scores == nil {
		return nil
	}
	return s.scores
}

// Close releases the backends.
func (s *stores) Close() {
	if s.saves != nil {
		s.saves.Close() //nolint:errcheck
	}
	if s.scores != nil {
		s.scores.Close() //nolint:errcheck
	}
}

// newLogger returns the command logger. Without --log everything is
// discarded since the terminal belongs to the TUI.
func newLogger() (*log.Logger, func()) {
	if !flagLog {
		return log.New(io.Discard), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".memory")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "memory.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
		Level:           logLevel(),
	})
	return logger, func() { f.Close() } //nolint:errcheck
}

// logLevel parses MEMORY_LOG_LEVEL, defaulting to info.
func logLevel() log.Level {
	level, err := log.ParseLevel(envCfg.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// loadGameConfig loads the memory config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.MemoryConfig, error) {
	cfg, err := config.LoadMemory(path)
	if err != nil {
		return cfg, err
	}
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", difficulty)
	}
	config.ApplyMemoryPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg.WithDefaults()
}

// gameDeps bundles the game dependencies for the local slot.
func gameDeps(s *stores, cfg config.MemoryConfig, logger *log.Logger) registry.Deps {
	return registry.Deps{
		Saves:    s.saves,
		Settings: s.saves,
		Logger:   logger,
		Config:   cfg,
	}
}
