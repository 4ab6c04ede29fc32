package config

import "strings"

// DifficultyPreset names a difficulty as it appears in flags and storage.
type DifficultyPreset string

const (
	DifficultySimple  DifficultyPreset = "simple"
	DifficultyRegular DifficultyPreset = "regular"
	DifficultyHard    DifficultyPreset = "hard"
)

// Presets returns every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultySimple, DifficultyRegular, DifficultyHard}
}

// ParsePreset resolves a case-insensitive preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultySimple, DifficultyRegular, DifficultyHard:
		return p, true
	}
	return "", false
}

// BaseRate returns the speed-curve offset configured for a preset.
// Unknown presets fall back to the simple rate.
func (s SpeedConfig) BaseRate(p DifficultyPreset) float64 {
	switch p {
	case DifficultyRegular:
		return s.BaseRates.Regular
	case DifficultyHard:
		return s.BaseRates.Hard
	default:
		return s.BaseRates.Simple
	}
}
