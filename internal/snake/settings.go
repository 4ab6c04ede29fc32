package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// Settings holds everything a Machine needs to build sessions.
type Settings struct {
	Grid        Grid
	SegmentSize float64
	Speed       SpeedCurve
}

// DefaultSettings returns the standard 30x20 board and speed curve.
func DefaultSettings() Settings {
	return SettingsFrom(config.DefaultSnakeConfig())
}

// SettingsFrom converts a loaded config into simulation settings.
func SettingsFrom(cfg config.SnakeConfig) Settings {
	return Settings{
		Grid: Grid{
			Width:         cfg.Board.Width,
			Height:        cfg.Board.Height,
			CellSize:      cfg.Board.CellSize,
			WallThickness: cfg.Board.WallThickness,
		},
		SegmentSize: cfg.Board.SegmentSize,
		Speed:       NewSpeedCurve(cfg.Speed),
	}
}
