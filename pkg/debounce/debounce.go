// Package debounce defers a call until a quiet period has passed,
// restarting the timer on every new trigger.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending func()
}

func New(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn after the quiet period, canceling any call
// still pending from an earlier trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		pending := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()

		if pending != nil {
			pending()
		}
	})
}

// Flush runs the pending call immediately instead of waiting out
// the quiet period. Without a pending call it is a no-op.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if pending != nil {
		pending()
	}
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
