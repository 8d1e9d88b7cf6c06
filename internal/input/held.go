// Package input tracks which keys are held and gates repeated actions.
//
// Terminals report key presses but never key releases, so a press keeps its
// key held for a short window. Auto-repeat presses extend the window, which
// makes a physically held key look continuously held to the game.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// DefaultHoldWindow is how long a single press keeps its key held.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys is the set of currently held keys.
// Writers may call it from any goroutine; the game reads it through Snapshot.
type HeldKeys struct {
	mu    sync.Mutex
	until map[core.Key]time.Time
	hold  time.Duration
}

// NewHeldKeys creates an empty held-key set with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &HeldKeys{
		until: make(map[core.Key]time.Time),
		hold:  hold,
	}
}

// Press marks a key as held from the given time for one hold window.
func (h *HeldKeys) Press(k core.Key, at time.Time) {
	if k == core.KeyNone {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.until[k] = at.Add(h.hold)
}

// Release drops a key immediately.
func (h *HeldKeys) Release(k core.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.until, k)
}

// Reset drops every held key.
func (h *HeldKeys) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clear(h.until)
}

// Snapshot returns the keys held at the given time as an immutable frame.
// Expired entries are pruned.
func (h *HeldKeys) Snapshot(at time.Time) core.InputFrame {
	h.mu.Lock()
	defer h.mu.Unlock()

	held := make([]core.Key, 0, len(h.until))
	for k, until := range h.until {
		if at.Before(until) {
			held = append(held, k)
		} else {
			delete(h.until, k)
		}
	}
	return core.NewInputFrame(held...)
}
