package object

// Ball is the square puck bounced between the paddles.
// Speeds are non-negative magnitudes; the sign of travel lives in the
// direction fields, which are always +1 or -1.
type Ball struct {
	X, Y       float64 // Top-left corner
	Size       float64 // Edge length of the square
	SpeedX     float64
	SpeedY     float64
	DirectionX int
	DirectionY int
	BaseSpeed  float64 // Reference speed used at every launch
}

// NewBall creates a motionless ball at the origin heading right and down.
func NewBall(size, baseSpeed float64) *Ball {
	return &Ball{
		Size:       size,
		DirectionX: 1,
		DirectionY: 1,
		BaseSpeed:  baseSpeed,
	}
}

// Velocity returns the signed displacement applied per tick.
func (b *Ball) Velocity() (vx, vy float64) {
	return b.SpeedX * float64(b.DirectionX), b.SpeedY * float64(b.DirectionY)
}

// Right returns the X coordinate of the ball's right edge.
func (b *Ball) Right() float64 {
	return b.X + b.Size
}

// Bottom returns the Y coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float64 {
	return b.Y + b.Size
}

// Rect returns the ball's current square for rendering.
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}
