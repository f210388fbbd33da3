package object

import (
	"math/rand/v2"
	"testing"
)

func TestNewPaddleStartsCentered(t *testing.T) {
	p := NewPaddle(0, 10, 50, 10, 0, 500)
	if p.Y != 225 {
		t.Fatalf("y = %v, want 225", p.Y)
	}
}

func TestPaddleMoveUpSnapsToUpperLimit(t *testing.T) {
	p := NewPaddle(0, 10, 60, 10, 20, 500)
	p.Y = 25

	p.MoveUp()
	if p.Y != 20 {
		t.Fatalf("y = %v, want 20", p.Y)
	}

	p.MoveUp()
	if p.Y != 20 {
		t.Fatalf("y after second move = %v, want 20", p.Y)
	}
}

func TestPaddleMoveDownSnapsToLowerLimit(t *testing.T) {
	p := NewPaddle(690, 10, 60, 10, 0, 500)
	p.Y = 435

	p.MoveDown()
	if p.Y != 440 {
		t.Fatalf("y = %v, want 440", p.Y)
	}
	if p.Bottom() != 500 {
		t.Fatalf("bottom = %v, want 500", p.Bottom())
	}
}

func TestPaddleMoveWithinLimits(t *testing.T) {
	p := NewPaddle(0, 10, 50, 10, 0, 500)
	start := p.Y

	p.MoveUp()
	if p.Y != start-10 {
		t.Fatalf("y after up = %v, want %v", p.Y, start-10)
	}
	p.MoveDown()
	p.MoveDown()
	if p.Y != start+10 {
		t.Fatalf("y after down = %v, want %v", p.Y, start+10)
	}
}

func TestPaddleStaysInsideLimitsForRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	p := NewPaddle(0, 10, 60, 17, 5, 480)

	for i := 0; i < 10000; i++ {
		if rng.IntN(2) == 0 {
			p.MoveUp()
		} else {
			p.MoveDown()
		}
		if p.Y < p.UpperLimit || p.Y > p.LowerLimit-p.Height {
			t.Fatalf("step %d: y = %v outside [%v, %v]", i, p.Y, p.UpperLimit, p.LowerLimit-p.Height)
		}
	}
}

func TestPaddleRect(t *testing.T) {
	p := NewPaddle(690, 10, 50, 10, 0, 500)
	r := p.Rect()
	if r.X != 690 || r.Y != 225 || r.W != 10 || r.H != 50 {
		t.Fatalf("rect = %+v, want {690 225 10 50}", r)
	}
}

func TestBallVelocity(t *testing.T) {
	b := NewBall(10, 2)
	b.SpeedX, b.SpeedY = 3, 1.5
	b.DirectionX, b.DirectionY = -1, 1

	vx, vy := b.Velocity()
	if vx != -3 || vy != 1.5 {
		t.Fatalf("velocity = (%v, %v), want (-3, 1.5)", vx, vy)
	}
}
