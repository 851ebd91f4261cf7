package utils

import (
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"
)

const (
	DisplayANSI   = "ansi"
	DisplayScreen = "screen"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int
	Height              int
	FrameRate           time.Duration
	SeedPath            string
	NoiseSeed           int64
	Threshold           uint8
	MaxGenerations      int
	StopOnStagnation    bool
	StagnationThreshold int
	Display             string
	LogLevel            string
	LogFormat           string
}

// fileConfig mirrors Config as it appears in an .hcl or .json file. Pointers
// tell an absent attribute apart from a zero value.
type fileConfig struct {
	Width               *int    `hcl:"width,optional"`
	Height              *int    `hcl:"height,optional"`
	FrameRate           *string `hcl:"frame_rate,optional"`
	SeedPath            *string `hcl:"seed_path,optional"`
	NoiseSeed           *int64  `hcl:"noise_seed,optional"`
	Threshold           *int    `hcl:"threshold,optional"`
	MaxGenerations      *int    `hcl:"max_generations,optional"`
	StopOnStagnation    *bool   `hcl:"stop_on_stagnation,optional"`
	StagnationThreshold *int    `hcl:"stagnation_threshold,optional"`
	Display             *string `hcl:"display,optional"`
	LogLevel            *string `hcl:"log_level,optional"`
	LogFormat           *string `hcl:"log_format,optional"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              20,
		FrameRate:           100 * time.Millisecond,
		Threshold:           128,
		MaxGenerations:      0, // run until extinction
		StopOnStagnation:    false,
		StagnationThreshold: 5,
		Display:             DisplayANSI,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig loads configuration from an HCL or JSON file on top of the
// defaults. The file extension picks the syntax.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	var fc fileConfig
	if err := hclsimple.DecodeFile(filename, nil, &fc); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}

	if err := fc.applyTo(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] bad value in file: %+v", filename)
	}

	return config, nil
}

func (fc fileConfig) applyTo(c *Config) error {
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.FrameRate != nil {
		d, err := time.ParseDuration(*fc.FrameRate)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "frame_rate %q: %v", *fc.FrameRate, err)
		}
		c.FrameRate = d
	}
	if fc.SeedPath != nil {
		c.SeedPath = *fc.SeedPath
	}
	if fc.NoiseSeed != nil {
		c.NoiseSeed = *fc.NoiseSeed
	}
	if fc.Threshold != nil {
		t, err := ParseThreshold(*fc.Threshold)
		if err != nil {
			return err
		}
		c.Threshold = t
	}
	if fc.MaxGenerations != nil {
		c.MaxGenerations = *fc.MaxGenerations
	}
	if fc.StopOnStagnation != nil {
		c.StopOnStagnation = *fc.StopOnStagnation
	}
	if fc.StagnationThreshold != nil {
		c.StagnationThreshold = *fc.StagnationThreshold
	}
	if fc.Display != nil {
		c.Display = *fc.Display
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		c.LogFormat = *fc.LogFormat
	}
	return nil
}

// ParseThreshold checks that v fits the 8-bit luminance scale
func ParseThreshold(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, errors.Wrapf(ErrInvalidConfig, "threshold must be in [0, 255], got %d", v)
	}
	return uint8(v), nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] frame_rate must not be negative, got %s", c.FrameRate)
	case c.SeedPath == "" && c.NoiseSeed == 0:
		return errors.Wrap(ErrInvalidConfig, "[Config.Validate] a seed image or a non-zero noise_seed is required")
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}

	switch c.Display {
	case DisplayANSI, DisplayScreen:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] display must be %q or %q, got %q", DisplayANSI, DisplayScreen, c.Display)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] log_level must be 'debug', 'info', 'warn', or 'error', got %q", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] log_format must be 'text' or 'json', got %q", c.LogFormat)
	}

	return nil
}
