package livesync

import (
	"sync"
	"time"
)

// DefaultPendingTTL bounds how long an optimistic value is shown without
// confirmation
const DefaultPendingTTL = 10 * time.Second

// Pending is a local write that has not been confirmed by the store yet.
// It is only a presentation hint.
type Pending[T any] struct {
	Value     T
	ExpiresAt time.Time
}

// NewPending creates a pending value that expires ttl after now
func NewPending[T any](value T, now time.Time, ttl time.Duration) *Pending[T] {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}

	return &Pending[T]{
		Value:     value,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the hint should no longer be shown
func (p *Pending[T]) Expired(now time.Time) bool {
	return p == nil || !now.Before(p.ExpiresAt)
}

// Confirms reports whether a stored value already reflects the pending write
type Confirms[T any] func(confirmed, pending T) bool

// Reconcile picks what to show. The confirmed value wins once confirms says
// it covers the pending write, or once the pending value expires. A nil
// confirms treats any confirmed value as covering the write.
func Reconcile[T any](pending *Pending[T], confirmed *T, now time.Time, confirms Confirms[T]) (T, bool) {
	if pending.Expired(now) {
		if confirmed != nil {
			return *confirmed, true
		}
		var zero T
		return zero, false
	}

	if confirmed != nil && (confirms == nil || confirms(*confirmed, pending.Value)) {
		return *confirmed, true
	}

	return pending.Value, true
}

// PendingSet holds pending values by key. It is safe for concurrent use.
type PendingSet[K comparable, T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[K]*Pending[T]
}

// NewPendingSet creates an empty set whose entries live for ttl
func NewPendingSet[K comparable, T any](ttl time.Duration) *PendingSet[K, T] {
	return &PendingSet[K, T]{
		ttl:   ttl,
		items: make(map[K]*Pending[T]),
	}
}

// Put records a pending value, replacing any previous one for key
func (s *PendingSet[K, T]) Put(key K, value T, now time.Time) *Pending[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := NewPending(value, now, s.ttl)
	s.items[key] = p
	return p
}

// Drop discards the pending value for key
func (s *PendingSet[K, T]) Drop(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}

// Snapshot returns the unexpired pending values and forgets expired ones
func (s *PendingSet[K, T]) Snapshot(now time.Time) map[K]*Pending[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[K]*Pending[T], len(s.items))
	for key, p := range s.items {
		if p.Expired(now) {
			delete(s.items, key)
			continue
		}
		copied := *p
		out[key] = &copied
	}
	return out
}
