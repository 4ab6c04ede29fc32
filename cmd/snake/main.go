// snake is a terminal snake game with a fixed-tick simulation core.
//
// Usage:
//
//	snake                    - Play in the terminal (same as "snake play")
//	snake serve              - Start SSH server for remote play
//	snake scores [level]     - Show high scores
//	snake levels             - Show the difficulty levels and their speed curves
//
// Global flags:
//
//	--fps <rate>        - Frame rate for rendering and input (default: from config)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Where play writes logs (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game. Pick a difficulty, eat food to grow,
and avoid the walls and your own tail. The game speeds up as you score.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show difficulty levels and speeds

Examples:
  snake
  snake --seed 42
  snake serve --ssh :2222
  snake scores hard`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default: discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
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

// loadConfig resolves the YAML config and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.FrameRate = flagFPS
	}
	return cfg, nil
}

// settingsAndConfig loads config and derives simulation settings from it.
func settingsAndConfig() (snake.Settings, config.SnakeConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return snake.Settings{}, config.SnakeConfig{}, err
	}
	return snake.SettingsFrom(cfg), cfg, nil
}
