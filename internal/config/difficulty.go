package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Easy and hard rescale the interval bounds; fixed turns off speed
// progression and keeps the bounds as configured.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Timing.MinIntervalMS = cfg.Timing.MinIntervalMS * 3 / 2
		cfg.Timing.MaxIntervalMS = cfg.Timing.MaxIntervalMS * 9 / 7
	case DifficultyHard:
		cfg.Timing.MinIntervalMS = cfg.Timing.MinIntervalMS * 3 / 5
		cfg.Timing.MaxIntervalMS = cfg.Timing.MaxIntervalMS * 5 / 7
	}
}
