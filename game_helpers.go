package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/seedgol/model"
	"github.com/sheikhrachel/seedgol/seed"
	"github.com/sheikhrachel/seedgol/utils"
)

// historySize is how many recent generations are remembered for stagnation checks.
const historySize = 5

// inputListener is implemented by renderers that own the keyboard
type inputListener interface {
	Listen(ctx context.Context) error
}

// initializeGame creates the grid and seeds it from the image or, when no
// image is configured, from Perlin noise.
func initializeGame(config utils.Config, logger *slog.Logger) (*model.Grid, error) {
	grid := model.NewGrid(config.Width, config.Height)

	if config.SeedPath == "" {
		logger.Debug("Seeding from noise.", "noise_seed", config.NoiseSeed)
		if err := seed.Apply(grid, seed.Noise(config.Width, config.Height, config.NoiseSeed), config.Threshold); err != nil {
			return nil, err
		}
	} else {
		logger.Debug("Seeding from image.", "path", config.SeedPath, "threshold", config.Threshold)
		img, err := seed.Load(config.SeedPath)
		if err != nil {
			return nil, err
		}
		if err := seed.Apply(grid, img, config.Threshold); err != nil {
			return nil, err
		}
	}

	logger.Info("Grid seeded.",
		"width", grid.GetWidth(), "height", grid.GetHeight(), "living_cells", grid.CountLivingCells())
	return grid, nil
}

// newRenderer picks the output backend for the configured display
func newRenderer(config utils.Config, outW io.Writer) (model.Renderer, error) {
	if config.Display == utils.DisplayScreen {
		r, err := model.NewScreenRenderer()
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return model.NewTerminalRenderer(outW), nil
}

// playGame runs the simulation, plus the renderer's input listener if it has
// one, until extinction, a stop condition, a quit key or ctx cancellation.
func playGame(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer model.Renderer,
	logger *slog.Logger,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stats := utils.NewStats()
	eg, ctx := errgroup.WithContext(ctx)

	if l, ok := renderer.(inputListener); ok {
		eg.Go(func() error { return l.Listen(ctx) })
	}
	eg.Go(func() error {
		// the listener exits once the simulation is done
		defer cancel()
		return simulate(ctx, config, grid, renderer, stats, logger)
	})

	err := eg.Wait()

	logger.Info("Final stats.",
		"generations", stats.TotalGenerations,
		"runtime", stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		"peak_population", stats.PeakPopulation,
	)

	if errors.Is(err, model.ErrQuit) || errors.Is(err, context.Canceled) {
		logger.Info("🛑 Shutting down gracefully...")
		return nil
	}
	return err
}

// simulate is the frame loop: draw, advance, wait, until the grid is extinct.
func simulate(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
	logger *slog.Logger,
) error {
	var (
		history       = model.NewHistory(historySize)
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for !grid.IsExtinct() {
		frameStart := time.Now()
		livingCells, density, status, isStagnant := updateGameState(grid, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if err := renderer.Draw(grid, gameStatus(generation, livingCells, density, status, stats)); err != nil {
			return err
		}

		if stop, reason := checkStopConditions(generation, stagnantCount, config); stop {
			logger.Info("🏁 Simulation stopped.", "reason", reason, "generation", generation)
			return nil
		}

		grid.NextGeneration()
		generation++

		if err := waitFrame(ctx, config.FrameRate); err != nil {
			return err
		}
	}

	stats.TotalGenerations = generation
	logger.Info("Population extinct.", "generation", generation)
	return nil
}

// updateGameState updates the stats and history and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	isStagnant := history.Repeats(grid)
	history.Push(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}

	return livingCells, density, status, isStagnant
}

// gameStatus formats the line shown under the grid
func gameStatus(generation, livingCells int, density float64, status string, stats *utils.Stats) string {
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		generation, livingCells, density, status, stats.GenerationsPerSecond)
}

// checkStopConditions determines if the game should stop before extinction
func checkStopConditions(generation, stagnantCount int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, "maximum generations reached"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// waitFrame paces the animation and returns early with ctx's error
func waitFrame(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
