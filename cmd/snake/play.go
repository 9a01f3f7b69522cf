package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD/HJKL  - Turn
  Q/Esc/Ctrl+C      - Quit

The snake cannot reverse onto itself; a turn towards its tail is ignored.

Difficulty options:
  easy   - Slower intervals, speeds up as you score
  normal - 700ms down to 200ms as you score
  hard   - Faster intervals, speeds up as you score
  fixed  - No progression, stays at the slowest interval

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := bootClock(ctx, cfg.Timing.TickRate)
	logger.Debug("starting game",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"screen", fmt.Sprintf("%dx%d", width, height),
		"preset", cfg.Difficulty.Preset,
	)

	res, err := tui.Run(ctx, cfg, rt, clk, logger)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Printf("Game Over! Your score is %d\n", res.Score)
	return nil
}
