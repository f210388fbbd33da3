package loop

import (
	"time"

	"github.com/tomz197/asshpong/internal/input"
)

// GameState represents the current screen of a session.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Match in progress
	GameStateShutdown                  // Server is shutting down
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// sessionState holds per-session state outside the round itself.
type sessionState struct {
	Input         input.Input
	GameState     GameState     // This session's screen
	Running       bool          // Session loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the session is in inactive warning state
}

func newSessionState() *sessionState {
	return &sessionState{
		GameState: GameStateStart,
		Running:   true,
	}
}
