package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagNew        bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing. Without a mode the campaign ("memory") is played.
A saved game is continued unless --new or --level is given.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Flip a card (continue after clearing a level)
  N                 - New game
  P                 - Pause
  B/Esc             - Back
  Q/Ctrl+C          - Quit

Difficulty options (how long cards stay visible):
  easy    - Slow reveal, mismatches stay up for a while
  normal  - Default timings
  hard    - Fast reveal, mismatches close at once

Examples:
  memory play
  memory play --level 8
  memory play --new --difficulty hard
  memory play memory_custom --config ./my-memory.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, fmt.Sprintf("Start a new campaign game at this level (1-%d)", engine.LevelCount()))
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard the saved game and start over")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(memory.ModeCampaign)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memory list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	s, err := openStores(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, gameDeps(s, gameCfg, logger))
	if err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	applyStartFlags(game, flagLevel, flagNew)

	result, runErr := tui.Run(game, s.recorder(), logger, runtimeConfig())
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	printRunSummary(result)
}

// startOptions is implemented by modes that can skip their save.
type startOptions interface {
	StartAtLevel(level int)
	StartFresh()
}

// applyStartFlags passes --level and --new to the game's next Reset.
func applyStartFlags(game registry.Game, level int, fresh bool) {
	opts, ok := game.(startOptions)
	if !ok {
		return
	}
	if level > 0 {
		opts.StartAtLevel(level)
	}
	if fresh {
		opts.StartFresh()
	}
}

// printRunSummary tells the player how to look up the levels they just
// cleared. Runs that cleared nothing print nothing.
func printRunSummary(r tui.RunResult) {
	if r.Cleared == 0 {
		return
	}
	fmt.Printf("Cleared %d level(s) this session. See them with: memory scores --run %s\n", r.Cleared, r.RunID)
}
