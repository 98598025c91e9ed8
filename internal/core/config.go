package core

const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size it will draw into, how often Step is called, and the deal seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Step calls per second
	Seed     int64 // shuffle seed; equal seeds deal equal grids
}

// WithDefaults fills zero or negative fields with the standard terminal
// size and tick rate. A zero seed is kept: the platform picks one.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the slice of game progress the platform cares about.
// GameOver stays true while a cleared level is on screen; the platform
// records one score per false-to-true transition.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned from every Game.Step call.
type StepResult struct {
	State GameState
}
