package core

// RuntimeConfig contains host configuration passed down when a session host starts.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	FrameRate  int    // Variable-rate passes per second (default 60)
	MaxCatchUp int    // Fixed ticks allowed per frame before the backlog is dropped
	Seed       int64  // RNG seed for deterministic food placement
	Player     string // Name recorded next to saved scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameRate:  60,
		MaxCatchUp: 5,
		Seed:       0, // 0 means use current time in platform layer
		Player:     "local",
	}
}
