package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game sized to the current terminal.

Controls:
  W/Up      - Turn up
  A/Left    - Turn left
  S/Down    - Turn down
  D/Right   - Turn right
  Q/Ctrl+C  - Quit

The game ends when the snake hits a wall or itself. The final
frame stays up until a key is pressed or the linger runs out.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	rt.TickInterval = cfg.TickInterval()
	rt.Seed = flagSeed

	runErr := tui.Run(tui.RunOptions{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})

	switch {
	case runErr == nil:
		return
	case errors.Is(runErr, tui.ErrNoColor):
		closeLog()
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	default:
		logger.Error("game failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the game, so nothing is logged to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})

	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}
