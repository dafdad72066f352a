// Package counter owns the per-account status, friend, follower and
// attachment counters.
package counter

import (
	"context"
	"sync"

	"roster/internal/account/models"
)

// InMemory is a map-backed counter sink.
type InMemory struct {
	mu       sync.RWMutex
	counters map[string]map[string]int64
}

func NewInMemory() *InMemory {
	return &InMemory{counters: make(map[string]map[string]int64)}
}

func (s *InMemory) InitStatusCounter(ctx context.Context, email string) error {
	return s.init(email, FieldStatuses)
}

func (s *InMemory) InitFollowerCounter(ctx context.Context, email string) error {
	return s.init(email, FieldFollowers)
}

func (s *InMemory) InitFriendCounter(ctx context.Context, email string) error {
	return s.init(email, FieldFriends)
}

// Increment adjusts a counter by delta, creating it when absent.
func (s *InMemory) Increment(_ context.Context, email, field string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields(email)[field] += delta
	return nil
}

// Read returns the counters for email. Absent counters read as zero.
func (s *InMemory) Read(_ context.Context, email string) (models.Counters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return toCounters(s.counters[email]), nil
}

// Has reports whether field was initialised for email.
func (s *InMemory) Has(email, field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.counters[email][field]
	return ok
}

func (s *InMemory) init(email, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fields(email)
	if _, ok := f[field]; !ok {
		f[field] = 0
	}
	return nil
}

func (s *InMemory) fields(email string) map[string]int64 {
	f, ok := s.counters[email]
	if !ok {
		f = make(map[string]int64)
		s.counters[email] = f
	}
	return f
}
