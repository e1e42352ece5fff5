// Package sched coordinates background work: one Slot per work category
// holds at most one in-flight unit, and starting a new unit cancels and
// replaces the previous one. Cancellation is cooperative; units observe it
// through their context and discard their own output.
package sched

import (
	"context"
	"sync"
	"time"
)

// Slot runs at most one unit of work at a time. The zero value is ready to
// use.
type Slot struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// Go cancels the slot's previous unit, if any, and starts f on a new
// goroutine with a fresh context. There is no blocking wait for the old unit
// to stop; it observes cancellation cooperatively.
func (s *Slot) Go(f func(ctx context.Context)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		f(ctx)
	}()
}

// Cancel cancels the slot's current unit, if any.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Debouncer coalesces a rapid sequence of triggers into a single deferred
// call fired after a quiet interval. Only the last triggered func runs.
type Debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules f to run once the quiet interval elapses, replacing any
// pending call. A non-positive interval runs f synchronously.
func (b *Debouncer) Trigger(f func()) {
	if b.d <= 0 {
		b.Stop()
		f()
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, f)
}

// Stop drops any pending call.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
