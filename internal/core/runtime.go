package core

// RuntimeConfig contains configuration passed to the game at initialization.
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

// Delta returns the fixed frame delta in seconds for the tick rate.
func (c RuntimeConfig) Delta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the externally visible status of a run.
type GameState struct {
	Mode     string  // Top-level mode name (MAIN_MENU, GAME_STAGE, HIGH_SCORE)
	Score    int     // Current score
	Kills    int     // Enemies destroyed this run
	Survived float64 // Seconds survived this run
	GameOver bool    // Whether the death screen is up
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// RunFinished is set on the tick a finished run was handed to the recorder.
	RunFinished bool
}

// RunRecord is the summary of a finished run handed to persistence.
type RunRecord struct {
	ID         string
	Difficulty string
	Initials   string
	Score      int
	Kills      int
	Survived   float64
	Seed       int64
}
