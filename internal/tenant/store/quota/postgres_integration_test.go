//go:build integration

package quota_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"roster/internal/tenant/models"
	"roster/internal/tenant/store/quota"
	"roster/pkg/platform/sentinel"
	"roster/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *quota.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = quota.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "tenant_quotas"))
}

func (s *PostgresStoreSuite) TestPutAndFind() {
	ctx := context.Background()
	row := models.TenantQuota{Domain: "acme.io", SubscriptionLevel: "1", StorageSize: "oops", AdminUsername: "alice"}
	s.Require().NoError(s.store.Put(ctx, row))

	found, err := s.store.FindByDomain(ctx, "ACME.io")
	s.Require().NoError(err)
	s.Equal(row, *found, "malformed sizes are stored verbatim")

	row.StorageSize = "50"
	s.Require().NoError(s.store.Put(ctx, row))
	found, err = s.store.FindByDomain(ctx, "acme.io")
	s.Require().NoError(err)
	s.Equal("50", found.StorageSize)
}

func (s *PostgresStoreSuite) TestFindUnknown() {
	_, err := s.store.FindByDomain(context.Background(), "missing.io")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
