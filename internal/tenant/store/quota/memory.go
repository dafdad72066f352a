package quota

import (
	"context"
	"strings"
	"sync"

	"roster/internal/tenant/models"
	"roster/pkg/platform/sentinel"
)

// InMemory is a map-backed tenant quota store for tests and local runs.
type InMemory struct {
	mu     sync.RWMutex
	quotas map[string]models.TenantQuota
}

func NewInMemory() *InMemory {
	return &InMemory{quotas: make(map[string]models.TenantQuota)}
}

// Put provisions or replaces a row.
func (s *InMemory) Put(_ context.Context, q models.TenantQuota) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.Domain = strings.ToLower(q.Domain)
	s.quotas[q.Domain] = q
	return nil
}

func (s *InMemory) FindByDomain(_ context.Context, domain string) (*models.TenantQuota, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotas[strings.ToLower(domain)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &q, nil
}
