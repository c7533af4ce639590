package schedule

import (
	"sync"
	"time"
)

// Timer is a cancellable scheduled task.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so debounce behavior can be tested without real
// waiting.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewClock returns the wall clock.
func NewClock() Clock { return realClock{} }

// Debouncer coalesces rapid triggers into a single trailing-edge call:
// each Trigger cancels any pending task and schedules a new one, so only
// the last trigger within a quiet period runs.
type Debouncer struct {
	clock Clock
	delay time.Duration

	mu      sync.Mutex
	pending Timer
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration, clock Clock) *Debouncer {
	if clock == nil {
		clock = realClock{}
	}
	return &Debouncer{clock: clock, delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any previously
// scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.clock.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.stopped = true
}
