package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, seeds the grid and plays until extinction. Frames go to
// outW and logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	config, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Configuration loaded.", "config", config)

	grid, err := initializeGame(config, logger)
	if err != nil {
		logger.Error("Failed to seed grid.", "error", err)
		return err
	}

	renderer, err := newRenderer(config, outW)
	if err != nil {
		return err
	}

	playErr := playGame(ctx, config, grid, renderer, logger)
	if err := renderer.Close(); err != nil && playErr == nil {
		playErr = err
	}
	if playErr != nil {
		logger.Error("Simulation failed.", "error", playErr)
	}
	return playErr
}
