package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sheikhrachel/seedgol/utils"
)

// ExitError carries the process exit code for usage and configuration errors
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs builds the configuration from defaults, an optional config file
// and flags, in increasing order of precedence. The boolean is true when the
// program should exit cleanly, e.g. after -h.
func parseArgs(args []string, output io.Writer) (utils.Config, bool, error) {
	flagSet := flag.NewFlagSet("gol", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gol - Conway's Game of Life seeded from an image.

Usage:
  gol [options] [SEED_PATH]

Arguments:
  SEED_PATH
    Image whose dark pixels (luminance <= threshold) start alive. Its size must
    match the grid. Formats: png, jpeg, gif, bmp, tiff, webp.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := utils.DefaultConfig()
	configPath := flagSet.String("config", "", "Path to an .hcl or .json configuration file.")
	seedPath := flagSet.String("seed", "", "Path to the seed image.")
	width := flagSet.Int("width", defaults.Width, "Grid width in cells.")
	height := flagSet.Int("height", defaults.Height, "Grid height in cells.")
	frameRate := flagSet.Duration("frame-rate", defaults.FrameRate, "Delay between generations.")
	threshold := flagSet.Int("threshold", int(defaults.Threshold), "Luminance at or below which a pixel is alive (0-255).")
	maxGenerations := flagSet.Int("max-generations", defaults.MaxGenerations, "Stop after this many generations. 0 runs until extinction.")
	stopOnStagnation := flagSet.Bool("stop-on-stagnation", defaults.StopOnStagnation, "Stop once the pattern keeps repeating.")
	noiseSeed := flagSet.Int64("noise-seed", 0, "Seed a Perlin noise pattern instead of an image.")
	display := flagSet.String("display", defaults.Display, "Output mode. Options: 'ansi' or 'screen'.")
	logLevel := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return defaults, true, nil
		}
		return defaults, false, &ExitError{Code: 2, Message: err.Error()}
	}

	config := defaults
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			return defaults, false, &ExitError{Code: 2, Message: err.Error()}
		}
		config = loaded
	}

	var flagErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.SeedPath = *seedPath
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "frame-rate":
			config.FrameRate = *frameRate
		case "threshold":
			t, err := utils.ParseThreshold(*threshold)
			if err != nil {
				flagErr = err
				return
			}
			config.Threshold = t
		case "max-generations":
			config.MaxGenerations = *maxGenerations
		case "stop-on-stagnation":
			config.StopOnStagnation = *stopOnStagnation
		case "noise-seed":
			config.NoiseSeed = *noiseSeed
		case "display":
			config.Display = strings.ToLower(*display)
		case "log-level":
			config.LogLevel = strings.ToLower(*logLevel)
		case "log-format":
			config.LogFormat = strings.ToLower(*logFormat)
		}
	})
	if flagErr != nil {
		return defaults, false, &ExitError{Code: 2, Message: flagErr.Error()}
	}

	if flagSet.NArg() > 0 {
		config.SeedPath = flagSet.Arg(0)
	}

	if err := config.Validate(); err != nil {
		return defaults, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
