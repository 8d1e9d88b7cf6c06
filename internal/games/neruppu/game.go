// Package neruppu implements Neruppu Daa, a survival game in which the player
// dodges falling fire & brimstone and collects power-ups while the
// difficulty ramps up with survival time.
package neruppu

import (
	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// Game implements the Neruppu Daa state machine and simulation.
type Game struct {
	phase     core.Phase
	player    Player
	hazards   []Hazard
	powerUps  []PowerUp
	effects   Effects
	spawner   entitySource
	score     int
	highScore int // Best score since the process started
	lives     int
	frame     int  // Ticks spent in PLAYING during the current run
	collected int  // Power-ups collected during the current run
	newHigh   bool // The last finished run beat the previous high score
	runtime   core.RuntimeConfig
	events    []core.Event
	finished  *core.RunSummary
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "neruppu"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neruppu Daa"
}

// Reset initializes the game to the menu. The high score is cleared,
// so this is called once per process, not between runs.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, FieldWidth)
	} else {
		g.spawner.Reset(runtime.Seed)
	}

	g.phase = core.PhaseMenu
	g.highScore = 0
	g.newHigh = false
	g.resetRun()
}

// resetRun clears all per-run state.
func (g *Game) resetRun() {
	g.player = newPlayer()
	g.hazards = g.hazards[:0]
	g.powerUps = g.powerUps[:0]
	g.effects = Effects{}
	g.score = 0
	g.lives = StartLives
	g.frame = 0
	g.collected = 0
}

// Step advances the game by one tick: input handling and phase transitions
// first, then the simulation when playing.
func (g *Game) Step(in core.InputFrame, gate core.Gate) core.StepResult {
	g.events = nil
	g.finished = nil

	if g.handleInput(in, gate) {
		return core.StepResult{State: g.State(), Events: g.events, Quit: true}
	}

	if g.phase == core.PhasePlaying {
		g.simulate()
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events,
		Run:    g.finished,
	}
}

// handleInput applies movement and the debounced actions.
// Returns true when the quit action fired.
func (g *Game) handleInput(in core.InputFrame, gate core.Gate) bool {
	if g.phase == core.PhasePlaying {
		moved := false
		if in.Has(core.KeyLeft) || in.Has(core.KeyA) {
			moved = g.player.Move(-MoveStep) || moved
		}
		if in.Has(core.KeyRight) || in.Has(core.KeyD) {
			moved = g.player.Move(MoveStep) || moved
		}
		if moved {
			g.emit(core.EventMove)
		}
	}

	// Actions are only offered to the gate when they apply to the current
	// phase, so an irrelevant press never consumes a debounce window.
	if in.Has(core.KeySpace) && g.phase == core.PhaseMenu && gate.Allow(core.ActionStart) {
		g.start()
	}

	if in.Has(core.KeyQuit) && gate.Allow(core.ActionQuit) {
		return true
	}

	if in.Has(core.KeyRestart) && g.phase == core.PhaseGameOver && gate.Allow(core.ActionRestart) {
		g.phase = core.PhaseMenu
	}

	return false
}

// start begins a fresh run from the menu.
func (g *Game) start() {
	g.resetRun()
	g.newHigh = false
	g.phase = core.PhasePlaying
}

// enterGameOver ends the run and records the high score exactly once.
func (g *Game) enterGameOver() {
	g.phase = core.PhaseGameOver
	g.newHigh = g.score > g.highScore
	if g.newHigh {
		g.highScore = g.score
	}

	g.finished = &core.RunSummary{
		Score:    g.score,
		Frames:   g.frame,
		Level:    Level(TimeFactor(g.frame)),
		PowerUps: g.collected,
		NewHigh:  g.newHigh,
	}
}

// emit records an event for this tick.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Frame:     g.frame,
		Level:     Level(TimeFactor(g.frame)),
	}
}

// Phase returns the active phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Player returns the player entity.
func (g *Game) Player() Player {
	return g.player
}

// Hazards returns the hazards currently in the field.
func (g *Game) Hazards() []Hazard {
	return g.hazards
}

// PowerUps returns the power-ups currently in the field.
func (g *Game) PowerUps() []PowerUp {
	return g.powerUps
}

// Effects returns the active power-up effects.
func (g *Game) Effects() Effects {
	return g.effects
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}
