package search

import (
	"context"
	"sort"
	"sync"

	"roster/internal/account/models"
	"roster/pkg/requestcontext"
)

// InMemory is a searchable index. With WithOperationLog it also keeps the
// most recent operations applied, which tests use to assert ordering.
type InMemory struct {
	mu     sync.RWMutex
	docs   map[string]Document
	log    []Document
	logCap int
}

type MemoryOption func(*InMemory)

// WithOperationLog keeps the last limit operations. The log is off by default.
func WithOperationLog(limit int) MemoryOption {
	return func(s *InMemory) {
		if limit > 0 {
			s.logCap = limit
		}
	}
}

func NewInMemory(opts ...MemoryOption) *InMemory {
	s := &InMemory{docs: make(map[string]Document)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemory) Index(ctx context.Context, a *models.Account) error {
	doc := NewDocument(OpIndex, a, requestcontext.Now(ctx))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[a.ID] = doc
	s.record(doc)
	return nil
}

func (s *InMemory) Remove(ctx context.Context, a *models.Account) error {
	return s.RemoveID(ctx, a.ID)
}

// RemoveID drops the document for accountID. Removing an absent id is a no-op
// apart from the log entry.
func (s *InMemory) RemoveID(ctx context.Context, accountID string) error {
	doc := Document{Op: OpRemove, AccountID: accountID, IndexedAt: requestcontext.Now(ctx)}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, accountID)
	s.record(doc)
	return nil
}

// IndexedIDs returns the ids of every indexed document in ascending order.
func (s *InMemory) IndexedIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// record must be called with mu held.
func (s *InMemory) record(doc Document) {
	if s.logCap == 0 {
		return
	}
	if len(s.log) == s.logCap {
		copy(s.log, s.log[1:])
		s.log = s.log[:len(s.log)-1]
	}
	s.log = append(s.log, doc)
}

func (s *InMemory) Get(accountID string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[accountID]
	return d, ok
}

// FindByEmail returns every indexed document with email.
func (s *InMemory) FindByEmail(email string) []Document {
	return s.filter(func(d Document) bool { return d.Email == email })
}

// FindByDomain returns indexed documents for a tenant, ordered by email.
func (s *InMemory) FindByDomain(domain string) []Document {
	return s.filter(func(d Document) bool { return d.Domain == domain })
}

func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Log returns a copy of the recorded operations, oldest first.
func (s *InMemory) Log() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Document(nil), s.log...)
}

func (s *InMemory) filter(keep func(Document) bool) []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Document
	for _, d := range s.docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}
