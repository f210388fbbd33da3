package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asshpong/internal/draw"
	"github.com/tomz197/asshpong/internal/round"
)

// bellListener rings the terminal bell on every bounce and point.
type bellListener struct {
	w io.Writer
}

func (b bellListener) OnBounce() {
	draw.Bell(b.w)
}

func (b bellListener) OnScore(round.Side) {
	draw.Bell(b.w)
}

// LogListener records round events: points at info level, bounces at debug.
type LogListener struct {
	Logger *log.Logger
}

func (l LogListener) OnBounce() {
	l.Logger.Debug("bounce")
}

func (l LogListener) OnScore(scorer round.Side) {
	l.Logger.Info("point scored", "scorer", scorer)
}

var (
	_ round.Listener = bellListener{}
	_ round.Listener = LogListener{}
)
