package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Snake: BodyConfig{
			InitialLength: 3,
		},
		Timing: TimingConfig{
			TickRate:      1000,
			MinIntervalMS: 200,
			MaxIntervalMS: 700,
			MaxSpeed:      20,
			PollSliceMS:   1,
		},
		Display: DisplayConfig{
			FPS: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
