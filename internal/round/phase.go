package round

import (
	"strconv"

	"github.com/tomz197/asshpong/internal/object"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseCountdown Phase = iota // Ball held at centre, waiting to launch
	PhaseRallying               // Ball in motion
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRallying:
		return "rallying"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Side identifies a player.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Score is the per-side point tally.
type Score struct {
	Left  int
	Right int
}

func (s *Score) add(side Side) {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}

// Intents are the paddle commands sampled once per tick. Up and down on the
// same paddle may both be set; they cancel out.
type Intents struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Snapshot is the per-tick query surface handed to renderers.
type Snapshot struct {
	Arena     object.Rect
	Left      object.Rect
	Right     object.Rect
	Ball      object.Rect
	Score     Score
	Phase     Phase
	Countdown string // Remaining whole seconds, empty while rallying
}
