package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// OutcomeDisconnect marks sessions that ended before the game did.
const OutcomeDisconnect = "disconnect"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// withDefaults fills unset fields from DefaultSSHServerConfig.
func (c SSHServerConfig) withDefaults() SSHServerConfig {
	def := DefaultSSHServerConfig()
	if c.Address == "" {
		c.Address = def.Address
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	return c
}

// SSHServer serves one independent snake game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	now    func() time.Time
}

// sessionKey stores the per-session tracker in the SSH context.
type sessionKey struct{}

// sessionTracker collects the outcome of one session's game.
type sessionTracker struct {
	mu       sync.Mutex
	started  time.Time
	snap     snake.Snapshot
	finished bool
}

func (t *sessionTracker) finish(snap snake.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap = snap
	t.finished = true
}

func (t *sessionTracker) result() (snake.Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap, t.finished
}

// NewSSHServer creates a new SSH server with the given configuration.
// store may be nil, in which case sessions are only logged.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	cfg = cfg.withDefaults()
	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a fresh game and Bubble Tea program for each SSH session.
// Terminals too small for the board get a notice instead of a clipped game.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	board := core.DefaultBoard()
	if !board.FitsTerminal(pty.Window.Width, pty.Window.Height) {
		s.logger.Info("terminal too small",
			"user", sshSession.User(),
			"width", pty.Window.Width,
			"height", pty.Window.Height,
		)
		return NewTooSmallModel(board, pty.Window.Width, pty.Window.Height), nil
	}

	cfg := core.DefaultConfig()
	cfg.Seed = s.now().UnixNano()
	game := snake.New(cfg)

	var onFinish func(snake.Snapshot)
	if tracker, ok := sshSession.Context().Value(sessionKey{}).(*sessionTracker); ok {
		onFinish = tracker.finish
	}

	return NewModel(game, onFinish), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware logs SSH session events and records each session.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		tracker := &sessionTracker{started: s.now()}
		sshSession.Context().SetValue(sessionKey{}, tracker)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		rec := s.sessionRecord(sshSession.User(), sshSession.RemoteAddr().String(), tracker)
		s.logger.Info("session ended",
			"user", rec.User,
			"remote", rec.Remote,
			"outcome", rec.Outcome,
			"ticks", rec.Ticks,
		)
		s.saveSession(rec)
	}
}

// sessionRecord builds the storage record for a finished session.
func (s *SSHServer) sessionRecord(user, remote string, tracker *sessionTracker) storage.SessionRecord {
	rec := storage.SessionRecord{
		User:      user,
		Remote:    remote,
		Outcome:   OutcomeDisconnect,
		StartedAt: tracker.started,
		EndedAt:   s.now(),
	}
	if snap, ok := tracker.result(); ok {
		rec.Outcome = snap.State.String()
		rec.Ticks = snap.Tick
	}
	return rec
}

func (s *SSHServer) saveSession(rec storage.SessionRecord) {
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveSession(rec); err != nil {
		s.logger.Error("could not save session", "error", err)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT/SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
