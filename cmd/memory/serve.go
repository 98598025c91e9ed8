package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu. Progress is
saved per SSH user; scores are shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.memory/host_key

Examples:
  memory serve                           # Listen on MEMORY_SSH_ADDR or 0.0.0.0:2222
  memory serve --ssh :2323               # Listen on port 2323
  memory serve --host-key ./my_host_key  # Use specific host key
  memory serve --saves redis             # Keep player saves in Redis

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "0.0.0.0:2222", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle for this long")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory-ssh",
		Level:           logLevel(),
	})

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		logger.Fatal("could not load game config", "error", err)
	}

	s, err := openStores(logger)
	if err != nil {
		logger.Fatal("could not open storage", "error", err)
	}
	defer s.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, s.scores, gameDeps(s, gameCfg, logger), logger)
	if err != nil {
		logger.Fatal("could not create server", "error", err)
	}

	fmt.Printf("memory SSH server on %s, Ctrl+C to stop\n", server.Addr())
	if err := server.ListenAndServe(context.Background()); err != nil {
		logger.Fatal("server failed", "error", err)
	}
}
