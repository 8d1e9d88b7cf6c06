package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neruppu-daa/internal/audio"
	"github.com/vovakirdan/neruppu-daa/internal/core"
	"github.com/vovakirdan/neruppu-daa/internal/input"
	"github.com/vovakirdan/neruppu-daa/internal/storage"
)

// Game is the simulation driven by the model.
type Game interface {
	Reset(runtime core.RuntimeConfig)
	Step(in core.InputFrame, gate core.Gate) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a Model.
type Options struct {
	Game     Game
	Runtime  core.RuntimeConfig
	Keys     KeyMap
	Hold     time.Duration // How long a key press counts as held
	Debounce time.Duration // Minimum gap between identical actions
	Audio    audio.Player  // Nil plays nothing
	Store    *storage.Store
	Logger   *log.Logger
	Now      func() time.Time // Nil uses time.Now
	Width    int
	Height   int
}

// Model is the Bubble Tea model running Neruppu Daa.
type Model struct {
	game     Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *input.HeldKeys
	gate     *input.Debouncer
	audio    audio.Player
	store    *storage.Store
	logger   *log.Logger
	now      func() time.Time
	runs     table.Model
	state    core.GameState
	quitting bool
}

// NewModel creates the model and resets the game to its menu.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.TickRate
	}
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 60, 26
	}

	h := help.New()
	h.ShowAll = false

	opts.Game.Reset(opts.Runtime)

	return Model{
		game:    opts.Game,
		screen:  core.NewScreen(opts.Width, opts.Height),
		runtime: opts.Runtime,
		keys:    opts.Keys,
		help:    h,
		held:    input.NewHeldKeys(opts.Hold),
		gate:    input.NewDebouncer(opts.Debounce, opts.Now),
		audio:   opts.Audio,
		store:   opts.Store,
		logger:  opts.Logger,
		now:     opts.Now,
		runs:    newRunsTable(),
		state:   opts.Game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// Key releases are not reported, and none arrive while unfocused
		m.held.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a press. The game sees it on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always works, even when quit is rebound
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	k := m.keys.Lookup(msg)
	if k == core.KeyNone {
		return m, nil
	}

	// A press in one direction ends any hold in the other, so turning
	// around does not stall for a hold window
	switch k {
	case core.KeyLeft, core.KeyA:
		m.held.Release(core.KeyRight)
		m.held.Release(core.KeyD)
	case core.KeyRight, core.KeyD:
		m.held.Release(core.KeyLeft)
		m.held.Release(core.KeyA)
	}

	m.held.Press(k, m.now())
	return m, nil
}

// handleTick runs one simulation step and dispatches its effects.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Snapshot(m.now())
	result := m.game.Step(frame, m.gate)

	for _, e := range result.Events {
		m.audio.Play(e)
	}

	if result.State.Phase != m.state.Phase {
		m.logger.Debug("phase changed", "from", m.state.Phase, "to", result.State.Phase)
	}
	m.state = result.State

	if result.Run != nil {
		m.recordRun(*result.Run)
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordRun logs a finished run and refreshes the runs table.
// The run log is best-effort; failures never stop the game.
func (m *Model) recordRun(run core.RunSummary) {
	m.logger.Info("run finished",
		"score", run.Score,
		"frames", run.Frames,
		"level", run.Level,
		"power_ups", run.PowerUps,
		"new_high", run.NewHigh,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot record run", "error", err)
		return
	}

	top, err := m.store.TopRuns(maxRuns)
	if err != nil {
		m.logger.Warn("cannot load runs", "error", err)
		return
	}
	m.runs.SetRows(runRows(top))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))

	if m.state.Phase == core.PhaseGameOver {
		if runs := renderRuns(m.runs); runs != "" {
			b.WriteString("\n")
			b.WriteString(runs)
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.ForPhase(m.state.Phase)))
	return b.String()
}

// Close releases the sound device.
func (m Model) Close() {
	m.audio.Close()
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
