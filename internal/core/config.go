package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use this to describe their output size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window frontend)
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

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Stage    int  // Current difficulty stage
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Events is a set of edge events raised during one tick.
// Frontends sonify them; the simulation performs no audio I/O.
type Events uint8

const (
	EventJump     Events = 1 << iota // became airborne this tick
	EventLand                        // became grounded this tick
	EventGameOver                    // the run ended this tick
	EventStageUp                     // entered a higher stage this tick
)

// Has reports whether e contains every event in o.
func (e Events) Has(o Events) bool {
	return e&o == o && o != 0
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events Events
}
