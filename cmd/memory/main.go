// memory is a card matching game for the terminal.
//
// Usage:
//
//	memory menu                    - Start menu (continue, new game, levels, scores)
//	memory play [mode]             - Play a mode directly
//	memory list                    - List available modes
//	memory scores [mode]           - Show high scores for a mode
//	memory save show|clear|reset   - Inspect or reset saved progress
//	memory config [--write]        - Print or install the default config
//	memory serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible deals
//	--db <path>         - Set database path (default: ~/.memory/memory.db)
//	--saves <backend>   - Save backend: sqlite, redis or memory
//	--redis-url <url>   - Redis URL for the redis save backend
//	--log               - Write a log file to ~/.memory/memory.log
//
// Flag defaults can also be set with MEMORY_* environment variables or a
// .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-memory/internal/games/memory"
)

const defaultDBPath = "~/.memory/memory.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSaves    string
	flagRedisURL string
	flagLog      bool

	// Settings from the environment, loaded before flags are parsed.
	envCfg config.Env
)

func main() {
	_ = godotenv.Load()

	var err error
	envCfg, err = config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyEnvDefaults(envCfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - find the matching pairs in your terminal",
	Long: `Memory is a terminal card matching game. Flip two cards per turn;
matching pairs stay face up and score points, mismatches cost a life.
Clear the grid to advance to the next level.

Available commands:
  menu     - Interactive menu (continue, new game, levels, scores)
  play     - Play a mode directly
  list     - Show all available modes
  scores   - View high scores
  save     - Inspect or reset saved progress
  config   - Print or install the default card config
  serve    - Start SSH server for remote play

Examples:
  memory menu
  memory play
  memory play --level 5
  memory play memory_custom --config ./my-memory.yaml
  memory scores --run <run-id>
  memory serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to the database (scores and sqlite saves)")
	rootCmd.PersistentFlags().StringVar(&flagSaves, "saves", "sqlite", "Save backend: sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis-url", "redis://localhost:6379/0", "Redis URL for the redis save backend")
	rootCmd.PersistentFlags().BoolVar(&flagLog, "log", false, "Write a log file to ~/.memory/memory.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults makes environment values the defaults of their flags.
func applyEnvDefaults(e config.Env) {
	setDefault(rootCmd.PersistentFlags().Lookup("db"), e.DBPath)
	setDefault(rootCmd.PersistentFlags().Lookup("saves"), e.Saves)
	setDefault(rootCmd.PersistentFlags().Lookup("redis-url"), e.RedisURL)
	setDefault(serveCmd.Flags().Lookup("ssh"), e.SSHAddr)
	setDefault(serveCmd.Flags().Lookup("host-key"), e.HostKey)
}
