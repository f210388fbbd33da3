// Package round implements the match engine: ball motion, collision
// resolution, scoring and the countdown that separates rallies.
//
// A Controller exclusively owns both paddles, the ball, the score pair and
// the round phase. Front-ends drive it with Tick once per frame and read
// Snapshot to draw; nothing inside Tick blocks, logs or draws.
package round

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/tomz197/asshpong/internal/object"
	"github.com/tomz197/asshpong/internal/physics"
)

// Controller runs one match between a left and a right player.
type Controller struct {
	cfg   Config
	arena object.Screen

	left  *object.Paddle
	right *object.Paddle
	ball  *object.Ball

	score Score
	phase Phase

	remaining int           // Whole countdown seconds left
	elapsed   time.Duration // Countdown time accumulated since the last whole second

	rng      *rand.Rand
	listener Listener
}

// New creates a controller for cfg. The first round starts in countdown.
// A nil listener is replaced with NopListener.
func New(cfg Config, rng *rand.Rand, listener Listener) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if listener == nil {
		listener = NopListener{}
	}

	c := &Controller{
		cfg:      cfg,
		arena:    object.NewScreen(cfg.ArenaWidth, cfg.ArenaHeight),
		left:     object.NewPaddle(0, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, 0, cfg.ArenaHeight),
		right:    object.NewPaddle(cfg.ArenaWidth-cfg.PaddleWidth, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, 0, cfg.ArenaHeight),
		ball:     object.NewBall(cfg.BallSize, cfg.BallBaseSpeed),
		rng:      rng,
		listener: listener,
	}
	c.ResetRound()
	return c, nil
}

// Tick advances the match by one frame. dt is the wall-clock time elapsed
// since the previous tick; it only drives the countdown.
func (c *Controller) Tick(dt time.Duration, in Intents) {
	c.applyIntents(in)

	if c.phase == PhaseRallying {
		c.advanceBall()
		c.checkLeftEdge()
		c.checkRightEdge()
		if c.phase == PhaseRallying {
			c.checkWalls()
		}
		return
	}

	c.advanceCountdown(dt)
}

// applyIntents moves the paddles. Paddles stay responsive during countdown.
func (c *Controller) applyIntents(in Intents) {
	if in.LeftUp {
		c.left.MoveUp()
	}
	if in.LeftDown {
		c.left.MoveDown()
	}
	if in.RightUp {
		c.right.MoveUp()
	}
	if in.RightDown {
		c.right.MoveDown()
	}
}

func (c *Controller) advanceBall() {
	vx, vy := c.ball.Velocity()
	c.ball.X += vx
	c.ball.Y += vy
}

// ResetRound centres the ball and paddles, stops the ball, draws new launch
// directions and restarts the countdown. Scores are untouched; any countdown
// already in progress is discarded.
func (c *Controller) ResetRound() {
	c.left.Center()
	c.right.Center()

	b := c.ball
	b.X = c.arena.CenterX - b.Size/2
	b.Y = c.arena.CenterY - b.Size/2
	b.SpeedX = 0
	b.SpeedY = 0
	b.DirectionX = c.randomDirection()
	b.DirectionY = c.randomDirection()

	c.phase = PhaseCountdown
	c.remaining = c.cfg.CountdownSeconds
	c.elapsed = 0
}

// NewGame zeroes both scores and starts a fresh round.
func (c *Controller) NewGame() {
	c.score = Score{}
	c.ResetRound()
}

func (c *Controller) randomDirection() int {
	if c.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Phase returns the current round phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SecondsRemaining returns the whole countdown seconds left, 0 while rallying.
func (c *Controller) SecondsRemaining() int {
	if c.phase != PhaseCountdown {
		return 0
	}
	return c.remaining
}

// Score returns the current score pair.
func (c *Controller) Score() Score {
	return c.score
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Snapshot returns everything a renderer needs for the current frame.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Arena: c.arena.Rect(),
		Left:  c.left.Rect(),
		Right: c.right.Rect(),
		Ball:  c.ball.Rect(),
		Score: c.score,
		Phase: c.phase,
	}
	if c.phase == PhaseCountdown {
		s.Countdown = strconv.Itoa(c.remaining)
	}
	return s
}

// launchSpeedY draws the vertical launch speed for a new rally.
func (c *Controller) launchSpeedY() float64 {
	factor := physics.Lerp(c.cfg.LaunchSpeedMin, c.cfg.LaunchSpeedMax, c.rng.Float64())
	return c.ball.BaseSpeed * factor
}
