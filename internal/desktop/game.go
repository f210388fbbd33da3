// Package desktop runs a match in a window with ebiten.
package desktop

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/asshpong/internal/loop/config"
	"github.com/tomz197/asshpong/internal/object"
	"github.com/tomz197/asshpong/internal/round"
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	foregroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	centerLineColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// keyboard reports key state for one update.
type keyboard struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// Game adapts a round.Controller to ebiten.Game.
type Game struct {
	ctrl    *round.Controller
	started bool
}

// New creates a desktop game around ctrl. The match starts on SPACE or ENTER.
func New(ctrl *round.Controller) *Game {
	return &Game{ctrl: ctrl}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.update(keyboard{
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}, time.Second/time.Duration(ebiten.TPS()))
}

func (g *Game) update(kb keyboard, dt time.Duration) error {
	if kb.justPressed(ebiten.KeyEscape) || kb.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if !g.started {
		if kb.justPressed(ebiten.KeySpace) || kb.justPressed(ebiten.KeyEnter) {
			g.started = true
			g.ctrl.NewGame()
		}
		return nil
	}

	if kb.justPressed(ebiten.KeyN) {
		g.ctrl.NewGame()
		return nil
	}

	g.ctrl.Tick(dt, round.Intents{
		LeftUp:    kb.pressed(ebiten.KeyW),
		LeftDown:  kb.pressed(ebiten.KeyS),
		RightUp:   kb.pressed(ebiten.KeyArrowUp) || kb.pressed(ebiten.KeyI),
		RightDown: kb.pressed(ebiten.KeyArrowDown) || kb.pressed(ebiten.KeyK),
	})
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	screen.Fill(backgroundColor)

	if !g.started {
		ebitenutil.DebugPrintAt(screen, "P O N G", int(snap.Arena.W/2)-24, int(snap.Arena.H/2)-40)
		ebitenutil.DebugPrintAt(screen, "W/S left paddle, Up/Down or I/K right paddle", int(snap.Arena.W/2)-135, int(snap.Arena.H/2))
		ebitenutil.DebugPrintAt(screen, "Press SPACE to start, N for a new game, Esc to quit", int(snap.Arena.W/2)-150, int(snap.Arena.H/2)+20)
		return
	}

	for y := 0.0; y < snap.Arena.H; y += config.CenterLineDash + config.CenterLineGap {
		ebitenutil.DrawRect(screen, snap.Arena.W/2-1, y, 2, config.CenterLineDash, centerLineColor)
	}
	for _, r := range []object.Rect{snap.Left, snap.Right, snap.Ball} {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, foregroundColor)
	}

	ebitenutil.DebugPrintAt(screen, strconv.Itoa(snap.Score.Left), int(snap.Arena.W/4), 20)
	ebitenutil.DebugPrintAt(screen, strconv.Itoa(snap.Score.Right), int(snap.Arena.W*3/4), 20)
	if snap.Countdown != "" {
		ebitenutil.DebugPrintAt(screen, snap.Countdown, int(snap.Arena.W/2)-3, int(snap.Arena.H/2)-40)
	}
}

// Layout implements ebiten.Game. The logical screen is the arena itself.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.ctrl.Config()
	return int(cfg.ArenaWidth), int(cfg.ArenaHeight)
}

var _ ebiten.Game = (*Game)(nil)
