package usecase

import (
	"sync"
	"time"
)

type storedSession[T any] struct {
	value    T
	lastSeen time.Time
}

// SessionStore keeps per-visitor controllers in memory, keyed by session id.
type SessionStore[T any] struct {
	mu    sync.Mutex
	items map[string]*storedSession[T]
	now   func() time.Time
}

func NewSessionStore[T any]() *SessionStore[T] {
	return &SessionStore[T]{
		items: make(map[string]*storedSession[T]),
		now:   time.Now,
	}
}

func (s *SessionStore[T]) Put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = &storedSession[T]{value: v, lastSeen: s.now()}
}

// Get returns the session and marks it as recently used.
func (s *SessionStore[T]) Get(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrSessionNotFound
	}
	item.lastSeen = s.now()
	return item.value, nil
}

func (s *SessionStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *SessionStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// SweepIdle drops sessions not touched within idle and returns how many went.
func (s *SessionStore[T]) SweepIdle(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for id, item := range s.items {
		if item.lastSeen.Before(cutoff) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}
