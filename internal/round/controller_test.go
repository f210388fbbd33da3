package round

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/tomz197/asshpong/internal/object"
)

type recorder struct {
	bounces int
	scores  []Side
}

func (r *recorder) OnBounce() {
	r.bounces++
}

func (r *recorder) OnScore(scorer Side) {
	r.scores = append(r.scores, scorer)
}

// tableConfig is the 700x500 table with 60-unit paddles and exact boundaries.
func tableConfig() Config {
	cfg := DefaultConfig()
	cfg.PaddleHeight = 60
	cfg.ToleranceX = 0
	cfg.ToleranceY = 0
	return cfg
}

func newTestController(t *testing.T, cfg Config) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(cfg, rand.New(rand.NewPCG(1, 2)), rec)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c, rec
}

// rally puts the ball in motion at the given position and velocity.
func rally(c *Controller, x, y, speedX, speedY float64, dirX, dirY int) {
	c.ball.X, c.ball.Y = x, y
	c.ball.SpeedX, c.ball.SpeedY = speedX, speedY
	c.ball.DirectionX, c.ball.DirectionY = dirX, dirY
	c.phase = PhaseRallying
}

func TestNewStartsInCountdown(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())

	if c.Phase() != PhaseCountdown {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseCountdown)
	}
	if c.SecondsRemaining() != 3 {
		t.Fatalf("seconds remaining = %d, want 3", c.SecondsRemaining())
	}
	if c.ball.SpeedX != 0 || c.ball.SpeedY != 0 {
		t.Fatalf("ball speed = (%v, %v), want (0, 0)", c.ball.SpeedX, c.ball.SpeedY)
	}
	if c.ball.X != 345 || c.ball.Y != 245 {
		t.Fatalf("ball position = (%v, %v), want (345, 245)", c.ball.X, c.ball.Y)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PaddleHeight = 600

	_, err := New(cfg, nil, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLeftPaddleBounce(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	c.left.Y = 205
	rally(c, 10, 230, 2, 1, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionX != 1 {
		t.Fatalf("direction x = %d, want 1", c.ball.DirectionX)
	}
	if c.ball.SpeedX != 3 || c.ball.SpeedY != 2 {
		t.Fatalf("speed = (%v, %v), want (3, 2)", c.ball.SpeedX, c.ball.SpeedY)
	}
	if c.ball.X != 10 {
		t.Fatalf("ball x = %v, want snapped to paddle face 10", c.ball.X)
	}
	if rec.bounces != 1 {
		t.Fatalf("bounces = %d, want 1", rec.bounces)
	}
	if len(rec.scores) != 0 {
		t.Fatalf("scores = %v, want none", rec.scores)
	}
	if c.Phase() != PhaseRallying {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseRallying)
	}
}

func TestLeftMissScoresForRight(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	c.left.Y = 205
	rally(c, 10, 10, 2, 1, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if got := c.Score(); got != (Score{Left: 0, Right: 1}) {
		t.Fatalf("score = %+v, want {Left:0 Right:1}", got)
	}
	if c.Phase() != PhaseCountdown {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseCountdown)
	}
	if c.ball.SpeedX != 0 || c.ball.SpeedY != 0 {
		t.Fatalf("ball speed = (%v, %v), want (0, 0)", c.ball.SpeedX, c.ball.SpeedY)
	}
	if len(rec.scores) != 1 || rec.scores[0] != SideRight {
		t.Fatalf("score events = %v, want [right]", rec.scores)
	}
	if c.left.Y != 220 || c.right.Y != 220 {
		t.Fatalf("paddles = (%v, %v), want recentred to 220", c.left.Y, c.right.Y)
	}
}

func TestRightPaddleBounce(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	c.right.Y = 100
	rally(c, 680, 120, 2, 1, 1, -1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionX != -1 {
		t.Fatalf("direction x = %d, want -1", c.ball.DirectionX)
	}
	if c.ball.X != 680 {
		t.Fatalf("ball x = %v, want snapped to 680", c.ball.X)
	}
	if rec.bounces != 1 {
		t.Fatalf("bounces = %d, want 1", rec.bounces)
	}
}

func TestRightMissScoresForLeft(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	c.right.Y = 100
	rally(c, 680, 400, 2, 1, 1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if got := c.Score(); got != (Score{Left: 1, Right: 0}) {
		t.Fatalf("score = %+v, want {Left:1 Right:0}", got)
	}
	if len(rec.scores) != 1 || rec.scores[0] != SideLeft {
		t.Fatalf("score events = %v, want [left]", rec.scores)
	}
}

func TestConsecutiveMissesScoreIndependently(t *testing.T) {
	c, _ := newTestController(t, tableConfig())

	c.left.Y = 205
	rally(c, 10, 10, 2, 0, -1, 1)
	c.Tick(16*time.Millisecond, Intents{})

	c.right.Y = 205
	rally(c, 680, 10, 2, 0, 1, 1)
	c.Tick(16*time.Millisecond, Intents{})

	if got := c.Score(); got != (Score{Left: 1, Right: 1}) {
		t.Fatalf("score = %+v, want {Left:1 Right:1}", got)
	}
}

func TestTopWallBounce(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	rally(c, 300, 0, 2, 1, 1, -1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionY != 1 {
		t.Fatalf("direction y = %d, want 1", c.ball.DirectionY)
	}
	if c.ball.Y != 0 {
		t.Fatalf("ball y = %v, want clamped to 0", c.ball.Y)
	}
	if rec.bounces != 1 {
		t.Fatalf("bounces = %d, want 1", rec.bounces)
	}
	if got := c.Score(); got != (Score{}) {
		t.Fatalf("score = %+v, want zero", got)
	}
}

func TestBottomWallBounce(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	rally(c, 300, 489, 2, 3, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionY != -1 {
		t.Fatalf("direction y = %d, want -1", c.ball.DirectionY)
	}
	if c.ball.Y != 490 {
		t.Fatalf("ball y = %v, want clamped to 490", c.ball.Y)
	}
	if rec.bounces != 1 {
		t.Fatalf("bounces = %d, want 1", rec.bounces)
	}
}

func TestWallBounceDoesNotAccelerate(t *testing.T) {
	c, _ := newTestController(t, tableConfig())
	rally(c, 300, 1, 2, 1.5, 1, -1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.SpeedX != 2 || c.ball.SpeedY != 1.5 {
		t.Fatalf("speed = (%v, %v), want unchanged (2, 1.5)", c.ball.SpeedX, c.ball.SpeedY)
	}
}

func TestBallLeavingPaddleIsNotResolvedAgain(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	c.left.Y = 205
	rally(c, 2, 230, 1, 0, 1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionX != 1 {
		t.Fatalf("direction x = %d, want 1", c.ball.DirectionX)
	}
	if rec.bounces != 0 || len(rec.scores) != 0 {
		t.Fatalf("events = %d bounces %v scores, want none", rec.bounces, rec.scores)
	}
}

func TestDeepOvershootStillBounces(t *testing.T) {
	c, _ := newTestController(t, tableConfig())
	c.left.Y = 205
	rally(c, 12, 230, 15, 0, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.DirectionX != 1 {
		t.Fatalf("direction x = %d, want 1", c.ball.DirectionX)
	}
	if c.ball.X != 10 {
		t.Fatalf("ball x = %v, want 10", c.ball.X)
	}

	c.Tick(16*time.Millisecond, Intents{})
	if c.ball.DirectionX != 1 {
		t.Fatalf("direction x after second tick = %d, want 1", c.ball.DirectionX)
	}
}

func TestRightEdgeCheckedAfterLeftBounce(t *testing.T) {
	c, rec := newTestController(t, tableConfig())
	// A valid arena keeps a bounced ball clear of the right face, so the
	// right paddle is pulled in next to the left one.
	c.left.Y = 205
	c.right.X = 15
	c.right.Y = 205
	rally(c, 12, 230, 2, 0, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if rec.bounces != 2 {
		t.Fatalf("bounces = %d, want 2", rec.bounces)
	}
	if len(rec.scores) != 0 {
		t.Fatalf("scores = %v, want none", rec.scores)
	}
	if c.ball.DirectionX != -1 {
		t.Fatalf("direction x = %d, want -1", c.ball.DirectionX)
	}
	if c.ball.X != 5 {
		t.Fatalf("ball x = %v, want 5", c.ball.X)
	}
	if c.ball.SpeedX != 4 {
		t.Fatalf("speed x = %v, want 4", c.ball.SpeedX)
	}
}

func TestToleranceBoundary(t *testing.T) {
	tests := []struct {
		name       string
		tolerance  float64
		ballY      float64
		wantBounce bool
	}{
		{name: "one unit above, exact", tolerance: 0, ballY: 194, wantBounce: false},
		{name: "one unit above, tolerance 1", tolerance: 1, ballY: 194, wantBounce: true},
		{name: "one unit below, exact", tolerance: 0, ballY: 266, wantBounce: false},
		{name: "one unit below, tolerance 1", tolerance: 1, ballY: 266, wantBounce: true},
		{name: "touching, exact", tolerance: 0, ballY: 195, wantBounce: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tableConfig()
			cfg.ToleranceY = tt.tolerance
			c, rec := newTestController(t, cfg)
			c.left.Y = 205
			rally(c, 10, tt.ballY, 2, 0, -1, 1)

			c.Tick(16*time.Millisecond, Intents{})

			if bounced := rec.bounces == 1; bounced != tt.wantBounce {
				t.Fatalf("bounced = %v, want %v (scores %v)", bounced, tt.wantBounce, rec.scores)
			}
			if !tt.wantBounce && c.Score().Right != 1 {
				t.Fatalf("right score = %d, want 1", c.Score().Right)
			}
		})
	}
}

func TestHorizontalToleranceTriggersEarly(t *testing.T) {
	cfg := tableConfig()
	cfg.ToleranceX = 3
	c, rec := newTestController(t, cfg)
	c.left.Y = 205
	rally(c, 14, 230, 2, 0, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if rec.bounces != 1 {
		t.Fatalf("bounces = %d, want 1", rec.bounces)
	}
	if c.ball.X != 10 {
		t.Fatalf("ball x = %v, want 10", c.ball.X)
	}
}

func TestMaxBallSpeedCapsAcceleration(t *testing.T) {
	cfg := tableConfig()
	cfg.MaxBallSpeed = 4
	c, _ := newTestController(t, cfg)
	c.left.Y = 205
	rally(c, 12, 230, 3.5, 5, -1, 1)

	c.Tick(16*time.Millisecond, Intents{})

	if c.ball.SpeedX != 4 {
		t.Fatalf("speed x = %v, want capped at 4", c.ball.SpeedX)
	}
	if c.ball.SpeedY != 5 {
		t.Fatalf("speed y = %v, want 5 (never reduced)", c.ball.SpeedY)
	}
}

func TestPaddlesStayInsideArenaForRandomIntents(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	rng := rand.New(rand.NewPCG(3, 5))

	for i := 0; i < 5000; i++ {
		in := Intents{
			LeftUp:    rng.IntN(2) == 0,
			LeftDown:  rng.IntN(2) == 0,
			RightUp:   rng.IntN(2) == 0,
			RightDown: rng.IntN(2) == 0,
		}
		c.Tick(16*time.Millisecond, in)

		for _, p := range []*object.Paddle{c.left, c.right} {
			if p.Y < p.UpperLimit || p.Y > p.LowerLimit-p.Height {
				t.Fatalf("tick %d: paddle y = %v outside [%v, %v]", i, p.Y, p.UpperLimit, p.LowerLimit-p.Height)
			}
		}
	}
}

func TestUpAndDownCancelOut(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	start := c.left.Y

	c.Tick(16*time.Millisecond, Intents{LeftUp: true, LeftDown: true})

	if c.left.Y != start {
		t.Fatalf("left y = %v, want %v", c.left.Y, start)
	}
}

func TestPaddlesMoveDuringCountdown(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	start := c.right.Y

	c.Tick(16*time.Millisecond, Intents{RightDown: true})

	if c.right.Y != start+10 {
		t.Fatalf("right y = %v, want %v", c.right.Y, start+10)
	}
}

func TestSnapshot(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())

	s := c.Snapshot()
	if s.Countdown != "3" {
		t.Fatalf("countdown = %q, want %q", s.Countdown, "3")
	}
	if s.Arena != (object.Rect{W: 700, H: 500}) {
		t.Fatalf("arena = %+v, want 700x500", s.Arena)
	}
	if s.Right.X != 690 {
		t.Fatalf("right paddle x = %v, want 690", s.Right.X)
	}
	if s.Ball.W != 10 || s.Ball.H != 10 {
		t.Fatalf("ball = %+v, want 10x10", s.Ball)
	}

	rally(c, 300, 200, 2, 1, 1, 1)
	if got := c.Snapshot().Countdown; got != "" {
		t.Fatalf("countdown while rallying = %q, want empty", got)
	}
}

func TestNewGameClearsScores(t *testing.T) {
	c, _ := newTestController(t, tableConfig())
	c.left.Y = 205
	rally(c, 10, 10, 2, 0, -1, 1)
	c.Tick(16*time.Millisecond, Intents{})

	c.NewGame()

	if got := c.Score(); got != (Score{}) {
		t.Fatalf("score = %+v, want zero", got)
	}
	if c.Phase() != PhaseCountdown {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseCountdown)
	}
}

func TestListenersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	ls := Listeners{a, b}

	ls.OnBounce()
	ls.OnScore(SideLeft)

	for i, r := range []*recorder{a, b} {
		if r.bounces != 1 || len(r.scores) != 1 || r.scores[0] != SideLeft {
			t.Fatalf("listener %d = %+v, want one bounce and one left score", i, r)
		}
	}
}
