package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Waiting  bool // Whether the game waits for any key (start or end screen)
}

// Cue is a sound request emitted by a game. The platform decides how
// (or whether) to play it.
type Cue int

const (
	CueNone     Cue = iota
	CuePositive     // correct order served
	CueNegative     // wrong ingredient or timeout
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CuePositive:
		return "positive"
	case CueNegative:
		return "negative"
	default:
		return "none"
	}
}

// RoundRecord describes one finished round, for persistence.
type RoundRecord struct {
	Recipe  string
	Correct bool
	Elapsed time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Cues   []Cue
	Rounds []RoundRecord
}
