package core

// RuntimeConfig is passed to games at reset time.
// Games use it to adapt to the terminal size and to seed their RNG
// for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-visible status of a running game.
type GameState struct {
	Score    int  // Current score (claimed percentage for territory games)
	GameOver bool // Whether the session reached a terminal state
	Won      bool // Whether the terminal state is a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
