package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH front end.
type SSHServerConfig struct {
	Address     string        // host:port, default ":2222"
	HostKeyPath string        // default ~/.memory/host_key, generated on first start
	IdleTimeout time.Duration // default 30m
	TickRate    int           // Step rate of every session
}

func (c SSHServerConfig) withDefaults() SSHServerConfig {
	if c.Address == "" {
		c.Address = ":2222"
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 30 * time.Minute
	}
	if c.TickRate <= 0 {
		c.TickRate = core.DefaultTickRate
	}
	return c
}

// SSHServer serves the memory game over SSH. Each SSH user name is its
// own save slot; the score table is shared by everyone.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	scores *storage.Store
	deps   registry.Deps
	logger *log.Logger
}

// NewSSHServer prepares the server without listening. scores may be nil
// to run without a score table. deps is copied into every session with
// Slot and Logger replaced per connection.
func NewSSHServer(cfg SSHServerConfig, scores *storage.Store, deps registry.Deps, logger *log.Logger) (*SSHServer, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "memory-ssh"})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, scores: scores, deps: deps, logger: logger}
	// Middleware runs last to first: log, require a PTY, then play.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: create server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory
// exists; wish generates the key itself when the file is missing.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: locate home: %w", err)
		}
		path = filepath.Join(home, ".memory", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

// sessionConfig sizes a session to the client's terminal. The seed is
// left zero so every game of the session is dealt with a fresh one.
func sessionConfig(width, height, tickRate int) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: tickRate}.WithDefaults()
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	deps := s.deps
	deps.Slot = user
	deps.Logger = s.logger.With("user", user, "session", uuid.NewString())

	var scores ScoreRecorder
	var source ScoreSource
	if s.scores != nil {
		scores, source = s.scores, s.scores
	}

	cfg := sessionConfig(pty.Window.Width, pty.Window.Height, s.config.TickRate)
	return NewSessionModel(deps, scores, source, cfg), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started")
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is cancelled, SIGINT or SIGTERM
// arrives, or the listener fails. Shutdown waits for open sessions up to
// a grace period.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	served := make(chan error, 1)
	go func() { served <- s.server.ListenAndServe() }()

	select {
	case err := <-served:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server stopped", "error", err)
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) Addr() string { return s.config.Address }
