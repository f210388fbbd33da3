package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/asshpong/internal/config"
	"github.com/tomz197/asshpong/internal/desktop"
	"github.com/tomz197/asshpong/internal/loop"
	"github.com/tomz197/asshpong/internal/random"
	"github.com/tomz197/asshpong/internal/round"
)

func main() {
	cfg, err := config.LoadGame()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr, "desktop")

	rng, seed, err := random.FromConfig(cfg.Seed)
	if err != nil {
		config.Exitf("seed: %v", err)
	}
	logger.Debug("match seeded", "seed", seed)

	ctrl, err := round.New(cfg.Round(), rng, loop.LogListener{Logger: logger})
	if err != nil {
		config.Exitf("round: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowTitle("asshpong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(desktop.New(ctrl)); err != nil {
		logger.Fatal("game error", "err", err)
	}

	score := ctrl.Score()
	logger.Info("game ended", "left", score.Left, "right", score.Right)
}
