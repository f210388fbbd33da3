package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/asshpong/internal/config"
	"github.com/tomz197/asshpong/internal/draw"
	"github.com/tomz197/asshpong/internal/loop"
)

func main() {
	cfg, err := config.LoadSSH()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	logger := cfg.NewLogger(os.Stderr, "ssh")
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.Host, "port", cfg.Port, "hostKeyPath", cfg.HostKeyPath, "workingDir", workingDir)

	// Cancelled on shutdown: every running match switches to the shutdown notice.
	gameCtx, cancelGames := context.WithCancel(context.Background())
	defer cancelGames()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			gameMiddleware(gameCtx, cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Notify players and wait for their sessions to end. Shutdown closes the
	// listener first, so no new matches start meanwhile.
	cancelGames()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Warn("sessions still open after grace period, closing", "err", err)
		if err := s.Close(); err != nil {
			logger.Error("close error", "err", err)
		}
	}
	logger.Info("Server stopped")
}

// gameMiddleware runs an independent local two-player match per SSH session.
func gameMiddleware(ctx context.Context, cfg config.SSH, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("session", uuid.NewString()[:8], "user", sess.User())
			sessLogger.Info("New game session", "terminal", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			start := time.Now()
			err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: sizeTracker.getSize,
				Round:        cfg.Round(),
				Seed:         cfg.Seed,
				Logger:       sessLogger,
				Bell:         cfg.Bell,
				Inactivity:   true,
			})
			if err != nil {
				sessLogger.Error("Game error", "err", err)
			}

			sessLogger.Info("Session ended", "duration", time.Since(start).Round(time.Second))
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
