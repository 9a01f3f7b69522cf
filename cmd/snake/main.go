// snake is a terminal snake game driven by a millisecond tick clock.
//
// Usage:
//
//	snake play              - Play in this terminal
//	snake serve             - Start SSH server for remote play
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>         - Game config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Where play writes its log
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a real-time snake game for your terminal",
	Long: `Snake runs a fixed-cadence snake game in your terminal. The snake
moves once per interval; eating food grows it and, every so often, makes
the interval shorter.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --seed 42
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default: no log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies the difficulty preset,
// the flag taking precedence over the file.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := string(cfg.Difficulty.Preset)
	if flagDifficulty != "" {
		name = flagDifficulty
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, err
	}

	// Normal keeps the file's bounds and its enabled switch.
	if preset == config.DifficultyNormal {
		cfg.Difficulty.Preset = preset
	} else {
		config.ApplySnakePreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// bootClock starts the interrupt source for a clock at rate ticks per
// second. The default rate uses the process-wide clock.
func bootClock(ctx context.Context, rate int) clock.Clock {
	if rate == clock.DefaultRate {
		clock.Boot(ctx)
		return clock.System()
	}
	c := clock.New(rate)
	clock.StartInterrupts(ctx, c)
	return c
}
