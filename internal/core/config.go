package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Seconds converts a duration in seconds to whole ticks at the configured rate.
func (c RuntimeConfig) Seconds(s float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(s * float64(rate))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MatchResult summarizes a finished match for persistence.
type MatchResult struct {
	Score1       int // Left side
	Score2       int // Right side
	Winner       int // 1 or 2, 0 if unfinished
	Rallies      int // Points played
	LongestRally int // Most paddle hits in one rally
	Ticks        int // Simulation ticks played
}
