package main

import (
	"bufio"
	"context"
	"os"

	"github.com/tomz197/asshpong/internal/config"
	"github.com/tomz197/asshpong/internal/draw"
	"github.com/tomz197/asshpong/internal/loop"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.LoadGame()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	// Logs go to a file (or nowhere) so they never land on the arena.
	logOut, closeLog, err := cfg.OpenLogFile()
	if err != nil {
		config.Exitf("%v", err)
	}
	defer closeLog()
	logger := cfg.NewLogger(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		config.Exitf("failed to enable raw mode: %v", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	draw.EnterAltScreen(os.Stdout)
	defer draw.LeaveAltScreen(os.Stdout)

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(context.Background(), reader, os.Stdout, loop.Options{
		Round:  cfg.Round(),
		Seed:   cfg.Seed,
		Logger: logger,
		Bell:   cfg.Bell,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		draw.LeaveAltScreen(os.Stdout)
		_ = term.Restore(fd, oldState)
		config.Exitf("game error: %v", err)
	}
}
