package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// DebounceGap is the minimum real-time spacing between repeats of one action.
const DebounceGap = 300 * time.Millisecond

// Debouncer implements core.Gate with an independent window per action.
type Debouncer struct {
	mu   sync.Mutex
	last map[core.Action]time.Time
	gap  time.Duration
	now  func() time.Time
}

// NewDebouncer creates a debouncer. A nil clock uses time.Now.
func NewDebouncer(gap time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{
		last: make(map[core.Action]time.Time),
		gap:  gap,
		now:  now,
	}
}

// Allow reports whether the action may fire and, if so, records it.
// A refused attempt does not restart the window.
func (d *Debouncer) Allow(a core.Action) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.last[a]; ok && now.Sub(last) < d.gap {
		return false
	}
	d.last[a] = now
	return true
}
