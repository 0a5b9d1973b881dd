// Package search coordinates the live shoe search: requests for the same key
// are debounced, and responses that are no longer the latest are dropped.
package search

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a waiter replaced by a newer request for the same key.
var ErrSuperseded = errors.New("search superseded by a newer request")

type waiter struct {
	superseded chan struct{}
}

// Debouncer delays work per key until no newer request arrives for one window.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*waiter
}

// NewDebouncer creates a Debouncer. A non-positive window disables the delay.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window, pending: make(map[string]*waiter)}
}

// Window returns the configured delay.
func (d *Debouncer) Window() time.Duration { return d.window }

// Wait blocks for the window. It returns nil when the window elapses without
// a newer Wait for key, ErrSuperseded when one arrives, or the context error.
func (d *Debouncer) Wait(ctx context.Context, key string) error {
	w := &waiter{superseded: make(chan struct{})}

	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		close(prev.superseded)
	}
	d.pending[key] = w
	d.mu.Unlock()

	if d.window <= 0 {
		d.release(key, w)
		return nil
	}

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-timer.C:
		return d.settle(key, w)
	case <-w.superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.release(key, w)
		return ctx.Err()
	}
}

// Cancel supersedes any pending waiter for key.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.pending[key]; ok {
		close(prev.superseded)
		delete(d.pending, key)
	}
}

// Pending reports how many keys have a waiter.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// settle ends w's window. A waiter replaced while its timer fired is still superseded.
func (d *Debouncer) settle(key string, w *waiter) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending[key] != w {
		return ErrSuperseded
	}
	delete(d.pending, key)
	return nil
}

func (d *Debouncer) release(key string, w *waiter) {
	d.mu.Lock()
	if d.pending[key] == w {
		delete(d.pending, key)
	}
	d.mu.Unlock()
}
