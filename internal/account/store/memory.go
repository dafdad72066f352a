// Package store persists accounts. Stores return sentinel errors; the
// account service decides what they mean.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"roster/internal/account/models"
	"roster/pkg/platform/sentinel"
)

// InMemory keeps accounts in maps with secondary indexes on every unique
// column so constraint behaviour matches the Postgres store.
type InMemory struct {
	mu           sync.RWMutex
	byID         map[string]*models.Account
	byEmail      map[string]string
	byActivation map[string]string
	byReset      map[string]string
	byRss        map[string]string
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:         make(map[string]*models.Account),
		byEmail:      make(map[string]string),
		byActivation: make(map[string]string),
		byReset:      make(map[string]string),
		byRss:        make(map[string]string),
	}
}

func (s *InMemory) FindByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a.Clone(), nil
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	return s.findBy(s.byEmail, email)
}

func (s *InMemory) FindByActivationToken(_ context.Context, token string) (*models.Account, error) {
	return s.findBy(s.byActivation, token)
}

func (s *InMemory) FindByResetToken(_ context.Context, token string) (*models.Account, error) {
	return s.findBy(s.byReset, token)
}

func (s *InMemory) findBy(index map[string]string, key string) (*models.Account, error) {
	if key == "" {
		return nil, sentinel.ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := index[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.byID[id].Clone(), nil
}

// Save inserts or replaces the account with a.ID.
func (s *InMemory) Save(_ context.Context, a *models.Account) error {
	if a == nil || a.ID == "" || a.Email == "" {
		return fmt.Errorf("account id and email are required: %w", sentinel.ErrConflict)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	checks := []struct {
		index map[string]string
		key   string
		name  string
	}{
		{s.byEmail, a.Email, "accounts_email_key"},
		{s.byActivation, a.ActivationToken, "accounts_activation_token_key"},
		{s.byReset, a.ResetToken, "accounts_reset_token_key"},
		{s.byRss, a.RssID, "accounts_rss_id_key"},
	}
	for _, c := range checks {
		if c.key == "" {
			continue
		}
		if owner, ok := c.index[c.key]; ok && owner != a.ID {
			return fmt.Errorf("%s: %w", c.name, sentinel.ErrConflict)
		}
	}

	if prev, ok := s.byID[a.ID]; ok {
		s.unindex(prev)
	}
	stored := a.Clone()
	s.byID[a.ID] = stored
	s.index(stored)
	return nil
}

func (s *InMemory) Delete(_ context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[a.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.unindex(prev)
	delete(s.byID, a.ID)
	return nil
}

// List pages through accounts ordered by id, starting after afterID.
func (s *InMemory) List(_ context.Context, afterID string, limit int) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*models.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

func (s *InMemory) index(a *models.Account) {
	s.byEmail[a.Email] = a.ID
	if a.ActivationToken != "" {
		s.byActivation[a.ActivationToken] = a.ID
	}
	if a.ResetToken != "" {
		s.byReset[a.ResetToken] = a.ID
	}
	if a.RssID != "" {
		s.byRss[a.RssID] = a.ID
	}
}

func (s *InMemory) unindex(a *models.Account) {
	delete(s.byEmail, a.Email)
	delete(s.byActivation, a.ActivationToken)
	delete(s.byReset, a.ResetToken)
	delete(s.byRss, a.RssID)
}
