// Package config provides YAML-based configuration loading for the snake
// simulation and its hosts.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Loop  LoopConfig  `yaml:"loop"`
}

// BoardConfig defines the playing field geometry in world units.
type BoardConfig struct {
	Width         int     `yaml:"width"`          // Columns
	Height        int     `yaml:"height"`         // Rows
	CellSize      float64 `yaml:"cell_size"`      // World units per cell
	WallThickness float64 `yaml:"wall_thickness"` // Thickness of the four border walls
	SegmentSize   float64 `yaml:"segment_size"`   // Collider size of segments and food
}

// SpeedConfig defines the logarithmic tick-interval curve.
type SpeedConfig struct {
	LogBase       float64         `yaml:"log_base"`
	MinIntervalMS int             `yaml:"min_interval_ms"` // Floor for the fixed tick interval
	BaseRates     BaseRatesConfig `yaml:"base_rates"`
}

// BaseRatesConfig holds the curve offset for each difficulty.
type BaseRatesConfig struct {
	Simple  float64 `yaml:"simple"`
	Regular float64 `yaml:"regular"`
	Hard    float64 `yaml:"hard"`
}

// LoopConfig defines host scheduling parameters.
type LoopConfig struct {
	FrameRate  int `yaml:"frame_rate"`   // Variable-rate passes per second
	MaxCatchUp int `yaml:"max_catch_up"` // Fixed ticks allowed per frame before dropping backlog
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinWallThickness is the bound a wall must exceed for a head that has left
// the board to overlap it. Walls straddle the arena edge, so only half the
// thickness reaches into the first cell outside.
func MinWallThickness(cellSize, segmentSize float64) float64 {
	return (cellSize - segmentSize) / 2
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width < 3 || b.Height < 1:
		return fmt.Errorf("%w: board must be at least 3x1, got %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidConfig)
	case b.WallThickness < 0:
		return fmt.Errorf("%w: wall_thickness must not be negative", ErrInvalidConfig)
	case b.SegmentSize <= 0 || b.SegmentSize >= b.CellSize:
		return fmt.Errorf("%w: segment_size must be in (0, cell_size)", ErrInvalidConfig)
	case b.WallThickness <= MinWallThickness(b.CellSize, b.SegmentSize):
		return fmt.Errorf("%w: wall_thickness must exceed %g for a %g segment in a %g cell",
			ErrInvalidConfig, MinWallThickness(b.CellSize, b.SegmentSize), b.SegmentSize, b.CellSize)
	}

	s := c.Speed
	switch {
	case s.LogBase <= 1:
		return fmt.Errorf("%w: log_base must be greater than 1", ErrInvalidConfig)
	case s.MinIntervalMS <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidConfig)
	case s.BaseRates.Simple <= 0 || s.BaseRates.Regular <= 0 || s.BaseRates.Hard <= 0:
		return fmt.Errorf("%w: base rates must be positive", ErrInvalidConfig)
	}

	if c.Loop.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	}
	if c.Loop.MaxCatchUp <= 0 {
		return fmt.Errorf("%w: max_catch_up must be positive", ErrInvalidConfig)
	}
	return nil
}
