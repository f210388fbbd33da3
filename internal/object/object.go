// Package object holds the game actors: the two paddles and the ball.
// Actors are plain data. Motion and collision rules live in the round package,
// drawing lives in whichever front-end reads the actors' rectangles.
package object

// Rect is an axis-aligned rectangle in arena coordinates.
// Origin is the top-left corner; Y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// Screen represents the arena dimensions.
type Screen struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// NewScreen returns a Screen with its center precomputed.
func NewScreen(width, height float64) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Rect returns the whole arena as a rectangle anchored at the origin.
func (s Screen) Rect() Rect {
	return Rect{W: s.Width, H: s.Height}
}
