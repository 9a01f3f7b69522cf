// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/clock"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      BodyConfig       `yaml:"snake"`
	Timing     TimingConfig     `yaml:"timing"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the logical playing field.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BodyConfig defines the snake at spawn.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the step cadence.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`       // Clock ticks per second
	MinIntervalMS int `yaml:"min_interval_ms"` // Step interval at MaxSpeed
	MaxIntervalMS int `yaml:"max_interval_ms"` // Step interval at speed 0
	MaxSpeed      int `yaml:"max_speed"`
	PollSliceMS   int `yaml:"poll_slice_ms"` // Longest single input wait
}

// PollSlice returns PollSliceMS as a duration.
func (t TimingConfig) PollSlice() time.Duration {
	return time.Duration(t.PollSliceMS) * time.Millisecond
}

// DisplayConfig defines how often the platform repaints.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// DifficultyConfig selects a preset and whether speed progresses.
type DifficultyConfig struct {
	Enabled bool             `yaml:"enabled"`
	Preset  DifficultyPreset `yaml:"preset"`
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.Width > 1<<15 || c.Board.Height > 1<<15:
		return fmt.Errorf("%w: board %dx%d is too large", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Snake.InitialLength < 1:
		return fmt.Errorf("%w: initial_length must be positive, got %d", ErrInvalid, c.Snake.InitialLength)
	case c.Snake.InitialLength > (min(c.Board.Width, c.Board.Height)+1)/2:
		return fmt.Errorf("%w: initial_length %d does not fit a %dx%d board", ErrInvalid, c.Snake.InitialLength, c.Board.Width, c.Board.Height)
	case c.Timing.TickRate <= 0 || c.Timing.TickRate > clock.MaxRate:
		return fmt.Errorf("%w: tick_rate must be in 1..%d, got %d", ErrInvalid, clock.MaxRate, c.Timing.TickRate)
	case c.Timing.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %d", ErrInvalid, c.Timing.MaxSpeed)
	case c.Timing.MinIntervalMS <= 0 || c.Timing.MinIntervalMS > c.Timing.MaxIntervalMS:
		return fmt.Errorf("%w: need 0 < min_interval_ms <= max_interval_ms, got %d and %d",
			ErrInvalid, c.Timing.MinIntervalMS, c.Timing.MaxIntervalMS)
	case c.Timing.PollSliceMS < 0:
		return fmt.Errorf("%w: poll_slice_ms must not be negative, got %d", ErrInvalid, c.Timing.PollSliceMS)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}
