package object

import "github.com/tomz197/asshpong/internal/physics"

// Paddle is a player-controlled bat on the left or right edge of the arena.
// X is fixed once the paddle is created; only Y changes during play.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Units moved per MoveUp/MoveDown call

	// Vertical travel bounds. The paddle always satisfies
	// UpperLimit <= Y <= LowerLimit-Height.
	UpperLimit float64
	LowerLimit float64
}

// NewPaddle creates a paddle at column x, vertically centered between the limits.
func NewPaddle(x, width, height, speed, upperLimit, lowerLimit float64) *Paddle {
	p := &Paddle{
		X:          x,
		Width:      width,
		Height:     height,
		Speed:      speed,
		UpperLimit: upperLimit,
		LowerLimit: lowerLimit,
	}
	p.Center()
	return p
}

// MoveUp moves the paddle up by its speed, snapping to the upper limit.
func (p *Paddle) MoveUp() {
	p.Y = physics.Clamp(p.Y-p.Speed, p.UpperLimit, p.LowerLimit-p.Height)
}

// MoveDown moves the paddle down by its speed, snapping so the bottom edge
// rests on the lower limit.
func (p *Paddle) MoveDown() {
	p.Y = physics.Clamp(p.Y+p.Speed, p.UpperLimit, p.LowerLimit-p.Height)
}

// Center places the paddle halfway between its limits.
func (p *Paddle) Center() {
	p.Y = p.UpperLimit + (p.LowerLimit-p.UpperLimit-p.Height)/2
}

// Right returns the X coordinate of the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the Y coordinate of the paddle's bottom edge.
func (p *Paddle) Bottom() float64 {
	return p.Y + p.Height
}

// Rect returns the paddle's current rectangle for rendering.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
