package core

// TickRate is the fixed simulation cadence in ticks per second.
const TickRate = 10

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: TickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of the game. Exactly one is active.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Frame     int // Ticks elapsed in the current run
	Level     int // Displayed difficulty level
}

// RunSummary describes a finished run. It is produced exactly once,
// on the tick the game enters the game-over phase.
type RunSummary struct {
	Score    int
	Frames   int
	Level    int
	PowerUps int
	NewHigh  bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event     // Events in the order they happened this tick
	Quit   bool        // The quit action fired; the loop must end
	Run    *RunSummary // Non-nil only on the tick a run ended
}
