package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters
	TickInterval time.Duration // Delay between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 150 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
