package round

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid round config")

// Config holds the fixed parameters of a match. Distances are arena units,
// speeds are arena units per tick.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64

	BallSize       float64
	BallBaseSpeed  float64
	SpeedIncrement float64 // Added to both ball speeds on every paddle bounce
	MaxBallSpeed   float64 // Per-axis cap for bounce acceleration, 0 = uncapped

	// Vertical launch speed is drawn uniformly from
	// [LaunchSpeedMin, LaunchSpeedMax] * BallBaseSpeed.
	LaunchSpeedMin float64
	LaunchSpeedMax float64

	CountdownSeconds int

	// Tolerance margins widen the paddle hit zone. ToleranceX moves the face
	// outwards, ToleranceY extends the paddle above and below.
	ToleranceX float64
	ToleranceY float64
}

// DefaultConfig returns the classic 700x500 table.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:       700,
		ArenaHeight:      500,
		PaddleWidth:      10,
		PaddleHeight:     50,
		PaddleSpeed:      10,
		BallSize:         10,
		BallBaseSpeed:    2,
		SpeedIncrement:   1,
		LaunchSpeedMin:   0.7,
		LaunchSpeedMax:   2,
		CountdownSeconds: 3,
		ToleranceX:       0,
		ToleranceY:       2,
	}
}

// Validate checks that the configuration describes a playable arena.
func (c Config) Validate() error {
	finite := []struct {
		name  string
		value float64
	}{
		{"arena width", c.ArenaWidth},
		{"arena height", c.ArenaHeight},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball size", c.BallSize},
		{"ball base speed", c.BallBaseSpeed},
		{"speed increment", c.SpeedIncrement},
		{"max ball speed", c.MaxBallSpeed},
		{"launch speed min", c.LaunchSpeedMin},
		{"launch speed max", c.LaunchSpeedMax},
		{"tolerance x", c.ToleranceX},
		{"tolerance y", c.ToleranceY},
	}
	// NaN fails every comparison below, so it has to be caught first.
	for _, p := range finite {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"arena width", c.ArenaWidth},
		{"arena height", c.ArenaHeight},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball size", c.BallSize},
		{"ball base speed", c.BallBaseSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"speed increment", c.SpeedIncrement},
		{"max ball speed", c.MaxBallSpeed},
		{"launch speed min", c.LaunchSpeedMin},
		{"countdown seconds", float64(c.CountdownSeconds)},
		{"tolerance x", c.ToleranceX},
		{"tolerance y", c.ToleranceY},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.LaunchSpeedMax < c.LaunchSpeedMin {
		return fmt.Errorf("%w: launch speed range [%v, %v] is inverted", ErrInvalidConfig, c.LaunchSpeedMin, c.LaunchSpeedMax)
	}
	if c.PaddleHeight > c.ArenaHeight {
		return fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalidConfig, c.PaddleHeight, c.ArenaHeight)
	}
	if c.BallSize >= c.ArenaHeight {
		return fmt.Errorf("%w: ball size %v does not fit arena height %v", ErrInvalidConfig, c.BallSize, c.ArenaHeight)
	}
	// A freshly centred ball must sit clear of both paddle hit zones.
	if (c.ArenaWidth-c.BallSize)/2 <= c.PaddleWidth+c.ToleranceX {
		return fmt.Errorf("%w: arena width %v too narrow for paddles of width %v", ErrInvalidConfig, c.ArenaWidth, c.PaddleWidth)
	}
	return nil
}
