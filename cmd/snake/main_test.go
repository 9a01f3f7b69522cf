package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}
	return path
}

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
	})
}

func TestLoadConfigDifficultyFlag(t *testing.T) {
	withFlags(t, writeConfig(t, "board:\n  width: 30\n  height: 15\n"), "hard")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Board.Width != 30 || cfg.Board.Height != 15 {
		t.Errorf("board = %dx%d, expected 30x15", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Difficulty.Preset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", cfg.Difficulty.Preset)
	}
	if cfg.Timing.MinIntervalMS != 120 || cfg.Timing.MaxIntervalMS != 500 {
		t.Errorf("intervals = %d/%d, expected 120/500", cfg.Timing.MinIntervalMS, cfg.Timing.MaxIntervalMS)
	}
}

func TestLoadConfigPresetFromFile(t *testing.T) {
	withFlags(t, writeConfig(t, "difficulty:\n  preset: fixed\n"), "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable speed progression")
	}
}

func TestLoadConfigEmptyPresetKeepsDisabled(t *testing.T) {
	withFlags(t, writeConfig(t, "difficulty:\n  enabled: false\n  preset: \"\"\n"), "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("an empty preset should not turn speed progression back on")
	}
	if cfg.Difficulty.Preset != config.DifficultyNormal {
		t.Errorf("preset = %q, expected normal", cfg.Difficulty.Preset)
	}
}

func TestLoadConfigNormalKeepsFile(t *testing.T) {
	withFlags(t, writeConfig(t, "timing:\n  min_interval_ms: 100\n  max_interval_ms: 900\n"), "normal")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Timing.MinIntervalMS != 100 || cfg.Timing.MaxIntervalMS != 900 {
		t.Errorf("intervals = %d/%d, expected the file's 100/900", cfg.Timing.MinIntervalMS, cfg.Timing.MaxIntervalMS)
	}
}

func TestLoadConfigBadDifficulty(t *testing.T) {
	withFlags(t, writeConfig(t, ""), "nightmare")

	if _, err := loadConfig(); err == nil {
		t.Error("unknown difficulty should be rejected")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "verbose"
	if _, err := newLogger(os.Stderr, "test"); err == nil {
		t.Error("unknown log level should be rejected")
	}

	flagLogLevel = "debug"
	if _, err := newLogger(os.Stderr, "test"); err != nil {
		t.Errorf("newLogger() failed: %v", err)
	}
}
