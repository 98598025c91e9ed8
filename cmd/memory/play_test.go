package main

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

func TestApplyStartFlags(t *testing.T) {
	saves := storage.NewMemoryStore()
	storeSave(t, saves, "")
	deps := registry.Deps{Saves: saves, Settings: saves, Config: config.DefaultMemoryConfig()}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}

	tests := []struct {
		name         string
		level        int
		fresh        bool
		wantRestored bool
		wantLevel    int
	}{
		{"continue", 0, false, true, 6},
		{"new game", 0, true, false, 6},
		{"start level", 5, false, false, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game, err := registry.Create(string(memory.ModeCampaign), deps)
			if err != nil {
				t.Fatal(err)
			}
			applyStartFlags(game, tc.level, tc.fresh)
			game.Reset(cfg)

			g := game.(*memory.Game)
			if g.Restored() != tc.wantRestored {
				t.Errorf("restored = %v, want %v", g.Restored(), tc.wantRestored)
			}
			if got := g.Snapshot().Level; got != tc.wantLevel {
				t.Errorf("level = %d, want %d", got, tc.wantLevel)
			}
		})
	}
}
