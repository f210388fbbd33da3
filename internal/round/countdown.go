package round

import "time"

// advanceCountdown consumes elapsed time one whole second at a time and
// launches the ball once no seconds remain.
func (c *Controller) advanceCountdown(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
	for c.remaining > 0 && c.elapsed >= time.Second {
		c.elapsed -= time.Second
		c.remaining--
	}
	if c.remaining == 0 {
		c.launch()
	}
}

// launch arms the ball speeds and starts the rally. Position and direction
// were already set by ResetRound.
func (c *Controller) launch() {
	c.ball.SpeedX = c.ball.BaseSpeed
	c.ball.SpeedY = c.launchSpeedY()
	c.phase = PhaseRallying
	c.elapsed = 0
}
