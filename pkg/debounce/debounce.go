// Package debounce coalesces bursts of calls into one trailing call.
package debounce

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// DefaultWait is the coalescing window used for scroll and resize
// signals.
const DefaultWait = 10 * time.Millisecond

// Debouncer runs f once, wait after the last Call in a burst.
type Debouncer struct {
	mu        sync.Mutex
	f         func()
	wait      time.Duration
	debounced func(func())
	pending   bool
}

// Func returns a Debouncer for f. A non-positive wait uses DefaultWait.
func Func(f func(), wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{f: f, wait: wait, debounced: debounce.New(wait)}
}

// Call schedules f, pushing back any call already pending.
func (d *Debouncer) Call() {
	d.mu.Lock()
	d.pending = true
	d.mu.Unlock()
	d.debounced(d.fire)
}

// Stop cancels a pending call and reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.pending
	d.pending = false
	return was
}

// fire runs f unless the burst was stopped.
func (d *Debouncer) fire() {
	d.mu.Lock()
	run := d.pending
	d.pending = false
	d.mu.Unlock()
	if run {
		d.f()
	}
}
