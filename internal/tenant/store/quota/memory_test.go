package quota

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"roster/internal/tenant/models"
	"roster/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) TestFindByDomain() {
	s.Require().NoError(s.store.Put(s.ctx, models.TenantQuota{Domain: "Acme.io", StorageSize: "50", SubscriptionLevel: "1"}))

	s.Run("lookup is case insensitive", func() {
		q, err := s.store.FindByDomain(s.ctx, "ACME.IO")
		s.Require().NoError(err)
		s.Equal("acme.io", q.Domain)
		s.Equal("50", q.StorageSize)
	})

	s.Run("unknown domain returns ErrNotFound", func() {
		_, err := s.store.FindByDomain(s.ctx, "other.io")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("put replaces row", func() {
		s.Require().NoError(s.store.Put(s.ctx, models.TenantQuota{Domain: "acme.io", StorageSize: "75"}))
		q, err := s.store.FindByDomain(s.ctx, "acme.io")
		s.Require().NoError(err)
		s.Equal("75", q.StorageSize)
	})
}
