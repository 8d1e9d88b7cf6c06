package core

import "github.com/zyedidia/generic/mapset"

// Key is one entry of the fixed input vocabulary the game understands.
// The platform translates physical terminal keys into these.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow - move left
	KeyRight       // Right arrow - move right
	KeyA           // A - move left
	KeyD           // D - move right
	KeySpace       // Space - start from the menu
	KeyQuit        // Q, Esc - quit from any screen
	KeyRestart     // R - back to the menu after game over
)

// Keys lists every bindable key in declaration order.
var Keys = []Key{KeyLeft, KeyRight, KeyA, KeyD, KeySpace, KeyQuit, KeyRestart}

// String returns the configuration name of the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyA:
		return "a"
	case KeyD:
		return "d"
	case KeySpace:
		return "space"
	case KeyQuit:
		return "quit"
	case KeyRestart:
		return "restart"
	default:
		return "none"
	}
}

// ParseKey resolves a configuration name back to a Key.
func ParseKey(name string) (Key, bool) {
	for _, k := range Keys {
		if k.String() == name {
			return k, true
		}
	}
	return KeyNone, false
}

// InputFrame is an immutable snapshot of the keys held at the start of a tick.
// The simulation reads it for the whole tick, so concurrent key updates
// are never observed half-applied.
type InputFrame struct {
	held mapset.Set[Key]
}

// NewInputFrame creates a frame in which exactly the given keys are held.
func NewInputFrame(keys ...Key) InputFrame {
	held := mapset.New[Key]()
	for _, k := range keys {
		if k != KeyNone {
			held.Put(k)
		}
	}
	return InputFrame{held: held}
}

// Has returns true if the key was held when the frame was taken.
func (f InputFrame) Has(k Key) bool {
	return f.held.Has(k)
}

// Len returns the number of held keys.
func (f InputFrame) Len() int {
	return f.held.Size()
}

// Action is a discrete, debounced command derived from held keys.
type Action int

const (
	ActionStart   Action = iota // Leave the menu and start a run
	ActionRestart               // Leave the game-over screen for the menu
	ActionQuit                  // End the process loop
)

// String returns the debounce name of the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Gate decides whether a discrete action may fire now.
// Implementations enforce a minimum real-time gap between repeats.
type Gate interface {
	Allow(a Action) bool
}

// OpenGate lets every action through. Useful for tests and replays.
type OpenGate struct{}

// Allow always returns true.
func (OpenGate) Allow(Action) bool { return true }

// Event is a discrete game moment reported to collaborators such as audio.
type Event int

const (
	EventPowerUp  Event = iota // A power-up was collected
	EventHit                   // A hazard hit the player
	EventMove                  // The player changed column
	EventGameOver              // The run ended
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventPowerUp:
		return "power_up"
	case EventHit:
		return "hit"
	case EventMove:
		return "move"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
