// Package loop runs terminal sessions: the fixed-rate Input → Update → Draw
// cycle around a round.Controller, plus the terminal renderer.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asshpong/internal/draw"
	"github.com/tomz197/asshpong/internal/input"
	"github.com/tomz197/asshpong/internal/loop/config"
	"github.com/tomz197/asshpong/internal/random"
	"github.com/tomz197/asshpong/internal/round"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Round        round.Config // Zero value means round.DefaultConfig()
	Seed         int64        // 0 draws a fresh seed
	Logger       *log.Logger  // Nil discards logs
	Bell         bool         // Ring the terminal bell on bounces and points
	Inactivity   bool         // Warn and disconnect idle sessions
	Renderer     Renderer     // Nil renders to the session writer
}

// Session runs one local two-player match on a terminal.
type Session struct {
	ctrl        *round.Controller
	renderer    Renderer
	writer      io.Writer
	inputStream *input.Stream
	state       *sessionState
	lastInput   time.Time
	inactivity  bool
	logger      *log.Logger
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	cfg := opts.Round
	if cfg == (round.Config{}) {
		cfg = round.DefaultConfig()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng, seed, err := random.FromConfig(opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed round: %w", err)
	}

	listeners := round.Listeners{LogListener{Logger: logger}}
	if opts.Bell {
		listeners = append(listeners, bellListener{w: w})
	}

	ctrl, err := round.New(cfg, rng, listeners)
	if err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewTerminalRenderer(w, opts.TermSizeFunc, cfg.ArenaWidth, cfg.ArenaHeight)
	}

	logger.Debug("session created", "seed", seed, "arena", fmt.Sprintf("%gx%g", cfg.ArenaWidth, cfg.ArenaHeight))

	s := &Session{
		ctrl:        ctrl,
		renderer:    renderer,
		writer:      w,
		inputStream: input.StartStream(r),
		state:       newSessionState(),
		lastInput:   time.Now(),
		inactivity:  opts.Inactivity,
		logger:      logger,
	}
	return s, nil
}

// Run starts the session loop with the standard Input → Update → Draw cycle.
// Blocks until the players quit, the input closes, or the shutdown notice
// started by cancelling ctx runs out.
func (s *Session) Run(ctx context.Context) error {
	defer s.inputStream.Stop()

	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	lastTime := time.Now()

	for s.state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		s.state.Input = input.ReadInput(s.inputStream)

		// ===== UPDATE PHASE =====
		select {
		case <-ctx.Done():
			s.beginShutdown()
		default:
		}
		s.step(frameStart.Sub(lastTime), frameStart)
		lastTime = frameStart

		// ===== DRAW PHASE =====
		if err := s.renderer.Render(s.frame(frameStart)); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	score := s.ctrl.Score()
	s.logger.Info("session ended", "left", score.Left, "right", score.Right)

	draw.ClearScreen(s.writer)
	return nil
}

// step applies the sampled input and advances the current screen by delta.
func (s *Session) step(delta time.Duration, now time.Time) {
	s.state.delta = min(delta, config.MaxFrameDelta)

	s.processInput(now)

	switch s.state.GameState {
	case GameStateStart:
		s.updateStartState()
	case GameStatePlaying:
		s.updatePlayingState()
	case GameStateShutdown:
		s.updateShutdownState()
	}
}

// processInput tracks activity and handles quitting.
func (s *Session) processInput(now time.Time) {
	in := s.state.Input

	if len(in.Pressed) > 0 {
		s.lastInput = now
		s.state.isInactive = false
	} else if s.inactivity {
		idle := now.Sub(s.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			s.logger.Info("disconnecting inactive session")
			s.state.Running = false
		} else if idle > config.InactivityWarnUser {
			s.state.isInactive = true
		}
	}

	if in.Quit {
		s.state.Running = false
	}
}

// updateStartState handles the start screen.
func (s *Session) updateStartState() {
	if s.state.Input.Space || s.state.Input.Enter {
		s.startGame()
	}
}

// updatePlayingState advances the round.
func (s *Session) updatePlayingState() {
	if s.state.Input.NewGame {
		s.startGame()
		return
	}

	in := s.state.Input
	s.ctrl.Tick(s.state.delta, round.Intents{
		LeftUp:    in.LeftUp,
		LeftDown:  in.LeftDown,
		RightUp:   in.RightUp,
		RightDown: in.RightDown,
	})
}

// startGame starts or restarts the match with the score at 0:0.
func (s *Session) startGame() {
	input.ResetKeyInput(s.inputStream)
	s.ctrl.NewGame()
	s.state.GameState = GameStatePlaying
	s.logger.Debug("new game")
}

// beginShutdown switches to the shutdown notice once.
func (s *Session) beginShutdown() {
	if s.state.GameState == GameStateShutdown {
		return
	}
	s.state.GameState = GameStateShutdown
	s.state.shutdownTimer = config.ShutdownDisplaySeconds
}

// updateShutdownState handles the shutdown screen countdown.
func (s *Session) updateShutdownState() {
	s.state.shutdownTimer -= s.state.delta.Seconds()
	if s.state.shutdownTimer <= 0 {
		s.state.Running = false
	}
}

// frame assembles what the renderer needs for this frame.
func (s *Session) frame(now time.Time) Frame {
	f := Frame{
		Snapshot: s.ctrl.Snapshot(),
		State:    s.state.GameState,
		Inactive: s.state.isInactive,
		Now:      now,
	}
	if s.state.isInactive {
		f.InactiveRemaining = max(0, int(config.InactivityDisconnectUser-now.Sub(s.lastInput).Seconds()))
	}
	if s.state.GameState == GameStateShutdown {
		f.ShutdownRemaining = int(s.state.shutdownTimer) + 1
	}
	return f
}

// Run creates a session and runs it until it ends.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
