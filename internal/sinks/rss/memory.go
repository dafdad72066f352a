package rss

import (
	"context"
	"sync"
)

type InMemory struct {
	ids IDSource

	mu       sync.Mutex
	owners   map[string]string
	released map[string]struct{}
}

func NewInMemory(ids IDSource) *InMemory {
	return &InMemory{
		ids:      ids,
		owners:   make(map[string]string),
		released: make(map[string]struct{}),
	}
}

func (s *InMemory) Mint(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		id := s.ids.NewRssID()
		if _, taken := s.owners[id]; taken {
			continue
		}
		if _, used := s.released[id]; used {
			continue
		}
		s.owners[id] = username
		return id, nil
	}
	return "", ErrMintExhausted
}

func (s *InMemory) Release(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[id]; ok {
		delete(s.owners, id)
		s.released[id] = struct{}{}
	}
	return nil
}

// Owner returns the username an id was minted for.
func (s *InMemory) Owner(_ context.Context, id string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.owners[id]
	return u, ok, nil
}
