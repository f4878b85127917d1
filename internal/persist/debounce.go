package persist

import (
	"sync"
	"time"
)

// Debouncer runs fn once after a quiescence window. Each Trigger
// cancels any pending run and arms a fresh timer, so a burst of
// triggers closer together than the window produces exactly one run,
// fired window after the last trigger. Trailing edge only: there is no
// leading run and no maximum-wait cap.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules fn to run after the window, replacing any pending
// schedule.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	// The callback clears only its own handle: a callback already past
	// Stop when a new Trigger arms the next timer must not erase that
	// timer's handle, or Stop/Flush could no longer cancel it.
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.timer == t {
			d.timer = nil
		}
		d.mu.Unlock()
		d.fn()
	})
	d.timer = t
}

// Flush runs fn immediately if a run is pending, cancelling the timer.
// A run already in flight is not cancelled; a racing late write wins
// on the storage key either way.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	if pending {
		d.fn()
	}
}

// Stop cancels any pending run without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
