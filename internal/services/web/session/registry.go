// Package session keeps server-side wizard sessions and the signed tokens
// that browsers present to find them again.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/onboard/internal/platform/id"
)

// Option customizes a Registry.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() (string, error)
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator replaces id.NewID.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// Busy is implemented by values that must not expire while work on them is
// outstanding, such as a form with a submission in flight.
type Busy interface {
	InFlight() bool
}

type entry[T any] struct {
	value   T
	touched time.Time
}

// Registry maps session IDs to values that expire after ttl without use.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	ttl     time.Duration
	now     func() time.Time
	newID   func() (string, error)
}

// NewRegistry builds an empty registry. A non-positive ttl disables expiry.
func NewRegistry[T any](ttl time.Duration, opts ...Option) *Registry[T] {
	o := options{now: time.Now, newID: id.NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		now:     o.now,
		newID:   o.newID,
	}
}

// Create stores value under a fresh ID.
func (r *Registry[T]) Create(value T) (string, error) {
	sessionID, err := r.newID()
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[sessionID] = &entry[T]{value: value, touched: r.now()}
	return sessionID, nil
}

// Get returns the live value for sessionID and refreshes its idle timer.
func (r *Registry[T]) Get(sessionID string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	e, ok := r.entries[sessionID]
	if !ok {
		return zero, false
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.entries, sessionID)
		return zero, false
	}
	e.touched = now
	return e.value, true
}

// Delete discards a session.
func (r *Registry[T]) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Sweep drops expired sessions and reports how many were removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for sessionID, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, sessionID)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry[T]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Len returns the number of stored sessions, expired or not.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry[T]) expired(e *entry[T], now time.Time) bool {
	if r.ttl <= 0 || now.Sub(e.touched) < r.ttl {
		return false
	}
	if busy, ok := any(e.value).(Busy); ok && busy.InFlight() {
		return false
	}
	return true
}
