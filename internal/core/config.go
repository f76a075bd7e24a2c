package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame requests per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, floored
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// GameEvent is a notable thing that happened during a tick.
type GameEvent int

const (
	EventJumped GameEvent = iota + 1
	EventCrashed
	EventRestarted
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []GameEvent
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e GameEvent) bool {
	for _, x := range r.Events {
		if x == e {
			return true
		}
	}
	return false
}
