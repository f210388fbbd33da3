package round

import (
	"github.com/tomz197/asshpong/internal/object"
	"github.com/tomz197/asshpong/internal/physics"
)

// Contacts are only resolved while the ball travels into the surface, so an
// overshoot deeper than one step cannot flip the direction twice.

// checkLeftEdge resolves the ball reaching the left paddle's face.
func (c *Controller) checkLeftEdge() {
	b := c.ball
	if b.DirectionX > 0 || b.X > c.left.Right()+c.cfg.ToleranceX {
		return
	}

	if c.overlapsPaddle(c.left) {
		b.X = c.left.Right()
		c.bounceOffPaddle()
		return
	}
	c.miss(SideLeft)
}

// checkRightEdge resolves the ball reaching the right paddle's face.
func (c *Controller) checkRightEdge() {
	b := c.ball
	if b.DirectionX < 0 || b.Right() < c.right.X-c.cfg.ToleranceX {
		return
	}

	if c.overlapsPaddle(c.right) {
		b.X = c.right.X - b.Size
		c.bounceOffPaddle()
		return
	}
	c.miss(SideRight)
}

// overlapsPaddle reports whether the ball's vertical extent meets the paddle's,
// widened by the vertical tolerance.
func (c *Controller) overlapsPaddle(p *object.Paddle) bool {
	return physics.SpansOverlap(c.ball.Y, c.ball.Bottom(), p.Y, p.Bottom(), c.cfg.ToleranceY)
}

// checkWalls bounces the ball off the top and bottom of the arena.
func (c *Controller) checkWalls() {
	b := c.ball
	hitTop := b.Y <= 0 && b.DirectionY < 0
	hitBottom := b.Bottom() >= c.arena.Height && b.DirectionY > 0
	if !hitTop && !hitBottom {
		return
	}

	b.Y = physics.Clamp(b.Y, 0, c.arena.Height-b.Size)
	b.DirectionY = -b.DirectionY
	c.listener.OnBounce()
}

// bounceOffPaddle reverses horizontal travel and speeds the ball up.
func (c *Controller) bounceOffPaddle() {
	b := c.ball
	b.DirectionX = -b.DirectionX
	b.SpeedX = c.accelerate(b.SpeedX)
	b.SpeedY = c.accelerate(b.SpeedY)
	c.listener.OnBounce()
}

// accelerate adds the bounce increment, honouring the speed cap without
// ever slowing a ball that already exceeds it.
func (c *Controller) accelerate(speed float64) float64 {
	next := speed + c.cfg.SpeedIncrement
	if limit := c.cfg.MaxBallSpeed; limit > 0 && next > limit {
		next = max(speed, limit)
	}
	return next
}

// miss awards a point to the opponent of the side whose goal was crossed.
func (c *Controller) miss(goal Side) {
	scorer := goal.Opponent()
	c.score.add(scorer)
	c.listener.OnScore(scorer)
	c.ResetRound()
}
