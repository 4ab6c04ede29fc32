package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:         30,
			Height:        20,
			CellSize:      30,
			WallThickness: 10,
			SegmentSize:   25,
		},
		Speed: SpeedConfig{
			LogBase:       600,
			MinIntervalMS: 20,
			BaseRates: BaseRatesConfig{
				Simple:  2,
				Regular: 20,
				Hard:    200,
			},
		},
		Loop: LoopConfig{
			FrameRate:  60,
			MaxCatchUp: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
