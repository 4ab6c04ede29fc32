package snake

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Difficulty is chosen from the menu and held fixed for a session.
type Difficulty int

const (
	Simple Difficulty = iota
	Regular
	Hard
)

// ErrUnknownDifficulty is returned when a difficulty name does not parse.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties returns every difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Simple, Regular, Hard}
}

// ParseDifficulty resolves a case-insensitive difficulty name.
func ParseDifficulty(name string) (Difficulty, error) {
	p, ok := config.ParsePreset(name)
	if !ok {
		return Simple, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	switch p {
	case config.DifficultyRegular:
		return Regular, nil
	case config.DifficultyHard:
		return Hard, nil
	default:
		return Simple, nil
	}
}

// Preset returns the config name of the difficulty.
func (d Difficulty) Preset() config.DifficultyPreset {
	switch d {
	case Regular:
		return config.DifficultyRegular
	case Hard:
		return config.DifficultyHard
	default:
		return config.DifficultySimple
	}
}

func (d Difficulty) String() string {
	return string(d.Preset())
}

// SpeedCurve turns score and difficulty into the fixed tick interval.
// The interval is 1 - log_LogBase(score + base) seconds, never below Floor.
type SpeedCurve struct {
	LogBase   float64
	Floor     time.Duration
	BaseRates config.BaseRatesConfig
}

// NewSpeedCurve builds a curve from the speed section of the config.
func NewSpeedCurve(cfg config.SpeedConfig) SpeedCurve {
	return SpeedCurve{
		LogBase:   cfg.LogBase,
		Floor:     time.Duration(cfg.MinIntervalMS) * time.Millisecond,
		BaseRates: cfg.BaseRates,
	}
}

// BaseRate returns the curve offset for a difficulty.
func (s SpeedCurve) BaseRate(d Difficulty) float64 {
	return config.SpeedConfig{BaseRates: s.BaseRates}.BaseRate(d.Preset())
}

// Interval computes the tick interval for a score at a difficulty.
func (s SpeedCurve) Interval(score int, d Difficulty) time.Duration {
	period := math.Log(float64(score)+s.BaseRate(d)) / math.Log(s.LogBase)
	interval := time.Duration((1 - period) * float64(time.Second))
	if interval < s.Floor {
		return s.Floor
	}
	return interval
}
