package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asshpong/internal/round"
)

// Game configures a match and its logging.
type Game struct {
	ArenaWidth       float64 `env:"PONG_ARENA_WIDTH"       envDefault:"700"`
	ArenaHeight      float64 `env:"PONG_ARENA_HEIGHT"      envDefault:"500"`
	PaddleWidth      float64 `env:"PONG_PADDLE_WIDTH"      envDefault:"10"`
	PaddleHeight     float64 `env:"PONG_PADDLE_HEIGHT"     envDefault:"50"`
	PaddleSpeed      float64 `env:"PONG_PADDLE_SPEED"      envDefault:"10"`
	BallSize         float64 `env:"PONG_BALL_SIZE"         envDefault:"10"`
	BallSpeed        float64 `env:"PONG_BALL_SPEED"        envDefault:"2"`
	SpeedIncrement   float64 `env:"PONG_SPEED_INCREMENT"   envDefault:"1"`
	MaxBallSpeed     float64 `env:"PONG_MAX_BALL_SPEED"    envDefault:"0"`
	LaunchSpeedMin   float64 `env:"PONG_LAUNCH_SPEED_MIN"  envDefault:"0.7"`
	LaunchSpeedMax   float64 `env:"PONG_LAUNCH_SPEED_MAX"  envDefault:"2"`
	CountdownSeconds int     `env:"PONG_COUNTDOWN_SECONDS" envDefault:"3"`
	ToleranceX       float64 `env:"PONG_TOLERANCE_X"       envDefault:"0"`
	ToleranceY       float64 `env:"PONG_TOLERANCE_Y"       envDefault:"2"`

	Seed     int64  `env:"PONG_SEED"`
	Bell     bool   `env:"PONG_BELL"      envDefault:"true"`
	LogLevel string `env:"PONG_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"PONG_LOG_FILE"`
}

// Round returns the match parameters.
func (g Game) Round() round.Config {
	return round.Config{
		ArenaWidth:       g.ArenaWidth,
		ArenaHeight:      g.ArenaHeight,
		PaddleWidth:      g.PaddleWidth,
		PaddleHeight:     g.PaddleHeight,
		PaddleSpeed:      g.PaddleSpeed,
		BallSize:         g.BallSize,
		BallBaseSpeed:    g.BallSpeed,
		SpeedIncrement:   g.SpeedIncrement,
		MaxBallSpeed:     g.MaxBallSpeed,
		LaunchSpeedMin:   g.LaunchSpeedMin,
		LaunchSpeedMax:   g.LaunchSpeedMax,
		CountdownSeconds: g.CountdownSeconds,
		ToleranceX:       g.ToleranceX,
		ToleranceY:       g.ToleranceY,
	}
}

// Validate checks the match parameters and log level.
func (g Game) Validate() error {
	if err := g.Round().Validate(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(g.LogLevel); err != nil {
		return fmt.Errorf("PONG_LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds a logger writing to w at the configured level.
func (g Game) NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// OpenLogFile opens the configured log file for appending, or returns
// io.Discard when none is set. The returned close func is never nil.
func (g Game) OpenLogFile() (io.Writer, func() error, error) {
	if g.LogFile == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// LoadGame reads and validates the match configuration.
func LoadGame() (Game, error) {
	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		return Game{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// SSH configures the SSH server.
type SSH struct {
	Game

	Host          string        `env:"SSH_HOST"           envDefault:"::"`
	Port          string        `env:"SSH_PORT"           envDefault:"2222"`
	HostKeyPath   string        `env:"SSH_HOST_KEY"       envDefault:"/app/keys/host_key"`
	ShutdownGrace time.Duration `env:"SSH_SHUTDOWN_GRACE" envDefault:"15s"`
}

// LoadSSH reads and validates the SSH server configuration.
func LoadSSH() (SSH, error) {
	var cfg SSH
	if err := ParseEnv(&cfg); err != nil {
		return SSH{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SSH{}, err
	}
	if cfg.ShutdownGrace < 0 {
		return SSH{}, errors.New("SSH_SHUTDOWN_GRACE must not be negative")
	}
	return cfg, nil
}

// Web configures the landing page server.
type Web struct {
	Host        string `env:"WEB_HOST"         envDefault:"0.0.0.0"`
	Port        string `env:"WEB_PORT"         envDefault:"8080"`
	DisplayHost string `env:"SSH_DISPLAY_HOST" envDefault:"localhost"`
	DisplayPort string `env:"SSH_DISPLAY_PORT" envDefault:"2222"`
	LogLevel    string `env:"PONG_LOG_LEVEL"   envDefault:"info"`
}

// LoadWeb reads the landing page configuration.
func LoadWeb() (Web, error) {
	var cfg Web
	if err := ParseEnv(&cfg); err != nil {
		return Web{}, err
	}
	return cfg, nil
}

// SSHCommand returns the command players run to connect.
func (w Web) SSHCommand() string {
	if w.DisplayPort == "" || w.DisplayPort == "22" {
		return "ssh " + w.DisplayHost
	}
	return "ssh -p " + w.DisplayPort + " " + w.DisplayHost
}
