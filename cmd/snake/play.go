package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Up/Down/Left/Right, WASD, HJKL - Steer (menu: navigate)
  Enter/Space                    - Start at the highlighted difficulty
  Tab                            - High scores
  Q/Ctrl+C                       - Quit

Examples:
  snake play
  snake play --fps 30
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, cfg, err := settingsAndConfig()
	if err != nil {
		return err
	}

	// Logs must not tear the alternate screen, so they go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.FrameRate = cfg.Loop.FrameRate
	rc.MaxCatchUp = cfg.Loop.MaxCatchUp
	rc.Seed = flagSeed
	if u, err := user.Current(); err == nil && u.Username != "" {
		rc.Player = u.Username
	}

	return tui.Run(settings, store, rc, logger)
}
