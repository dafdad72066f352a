package digest

import (
	"context"
	"sync"

	"roster/internal/account/models"
)

type InMemory struct {
	mu      sync.RWMutex
	members map[string]map[string]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{members: make(map[string]map[string]struct{})}
}

func (s *InMemory) Subscribe(_ context.Context, kind models.DigestKind, username, domain, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(kind, day, domain)
	set, ok := s.members[k]
	if !ok {
		set = make(map[string]struct{})
		s.members[k] = set
	}
	set[username] = struct{}{}
	return nil
}

func (s *InMemory) Unsubscribe(_ context.Context, kind models.DigestKind, username, domain, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(kind, day, domain)
	delete(s.members[k], username)
	if len(s.members[k]) == 0 {
		delete(s.members, k)
	}
	return nil
}

// Members lists usernames due for the given run, sorted.
func (s *InMemory) Members(_ context.Context, kind models.DigestKind, day, domain string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.members[key(kind, day, domain)]
	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	return sorted(out), nil
}
