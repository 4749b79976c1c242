package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int
	Distance float64 // meters skied, the scoring basis
	GameOver bool
	Paused   bool
	Started  bool   // false while on the title screen
	EndedBy  string // obstacle that ended the run, empty otherwise
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the contract between a game implementation and the platform that
// drives it. The platform calls Reset once per run context, then alternates
// Step and Render at the tick rate. Implementations are not required to be
// goroutine-safe; the platform calls them from a single goroutine.
type Game interface {
	ID() string
	Title() string
	Reset(runtime RuntimeConfig)
	Step(in InputFrame) StepResult
	Render(dst *Screen)
	State() GameState
}
