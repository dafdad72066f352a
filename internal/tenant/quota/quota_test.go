package quota

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"roster/internal/tenant/models"
	quotastore "roster/internal/tenant/store/quota"
	dErrors "roster/pkg/domain-errors"
)

func validOptions() map[string]string {
	return map[string]string{
		KeyBasicSize:      "10",
		KeyPremiumSize:    "1000",
		KeyUnlimitedSize:  "100000",
		KeyBasicLevel:     "0",
		KeyPremiumLevel:   "1",
		KeyUnlimitedLevel: "-1",
	}
}

func mustLoad(t *testing.T) Options {
	t.Helper()
	opts, err := Load(validOptions())
	require.NoError(t, err)
	return opts
}

func TestLoad(t *testing.T) {
	t.Run("all keys present", func(t *testing.T) {
		opts := mustLoad(t)
		assert.Equal(t, int64(10), opts.BasicSizeMB)
		assert.Equal(t, int64(1000), opts.PremiumSizeMB)
		assert.Equal(t, int64(100000), opts.UnlimitedSizeMB)
		assert.Equal(t, int64(10_000_000), opts.BaselineBytes())
	})

	for _, key := range requiredKeys {
		t.Run("missing "+key+" fails", func(t *testing.T) {
			raw := validOptions()
			delete(raw, key)
			_, err := Load(raw)
			assert.ErrorContains(t, err, key)
		})
	}

	t.Run("non-numeric default size fails", func(t *testing.T) {
		raw := validOptions()
		raw[KeyPremiumSize] = "lots"
		_, err := Load(raw)
		assert.ErrorContains(t, err, KeyPremiumSize)
	})

	t.Run("size that overflows bytes fails", func(t *testing.T) {
		raw := validOptions()
		raw[KeyUnlimitedSize] = "9223372036854775807"
		_, err := Load(raw)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("duplicate level codes fail", func(t *testing.T) {
		raw := validOptions()
		raw[KeyPremiumLevel] = "0"
		_, err := Load(raw)
		assert.Error(t, err)
	})
}

func TestTierFor(t *testing.T) {
	opts := mustLoad(t)

	tier, size := opts.TierFor("1")
	assert.Equal(t, models.TierPremium, tier)
	assert.Equal(t, int64(1000), size)

	tier, size = opts.TierFor("-1")
	assert.Equal(t, models.TierUnlimited, tier)
	assert.Equal(t, int64(100000), size)

	tier, _ = opts.TierFor("0")
	assert.Equal(t, models.TierBasic, tier)

	tier, size = opts.TierFor("gold")
	assert.Equal(t, models.TierBasic, tier, "unknown codes are basic")
	assert.Equal(t, int64(10), size)
}

func TestResolveBytes(t *testing.T) {
	resolver := NewResolver(mustLoad(t))
	baseline := int64(10_000_000)

	tests := []struct {
		name        string
		storageSize string
		expected    int64
	}{
		{name: "fifty megabytes", storageSize: "50", expected: 50_000_000},
		{name: "surrounding whitespace tolerated", storageSize: " 50 ", expected: 50_000_000},
		{name: "non-numeric falls back", storageSize: "oops", expected: baseline},
		{name: "empty falls back", storageSize: "", expected: baseline},
		{name: "decimal falls back", storageSize: "1.5", expected: baseline},
		{name: "zero falls back", storageSize: "0", expected: baseline},
		{name: "negative falls back", storageSize: "-5", expected: baseline},
		{name: "int64 overflow falls back", storageSize: "99999999999999999999", expected: baseline},
		{name: "byte overflow falls back", storageSize: strconv.FormatInt(9223372036854, 10) + "0", expected: baseline},
		{name: "largest representable size", storageSize: "9223372036854", expected: 9223372036854 * 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ResolveBytes(models.TenantQuota{Domain: "acme.io", StorageSize: tt.storageSize})
			assert.Equal(t, tt.expected, got)
		})
	}
}

type failingStore struct{}

func (failingStore) FindByDomain(context.Context, string) (*models.TenantQuota, error) {
	return nil, errors.New("connection refused")
}

type ServiceSuite struct {
	suite.Suite
	store   *quotastore.InMemory
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	opts, err := Load(validOptions())
	s.Require().NoError(err)
	s.store = quotastore.NewInMemory()
	s.service = NewService(s.store, opts)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestForDomain() {
	s.Require().NoError(s.store.Put(s.ctx, models.TenantQuota{
		Domain: "acme.io", SubscriptionLevel: "1", StorageSize: "50", AdminUsername: "alice",
	}))
	s.Require().NoError(s.store.Put(s.ctx, models.TenantQuota{
		Domain: "broken.io", SubscriptionLevel: "-1", StorageSize: "oops",
	}))

	s.Run("resolves tier and bytes", func() {
		q, err := s.service.ForDomain(s.ctx, " Acme.IO ")
		s.Require().NoError(err)
		s.Equal(models.TierPremium, q.Tier)
		s.Equal(int64(50_000_000), q.Bytes)
		s.True(q.IsAdmin("alice"))
		s.False(q.IsAdmin("bob"))
	})

	s.Run("malformed size keeps tier but uses baseline bytes", func() {
		q, err := s.service.ForDomain(s.ctx, "broken.io")
		s.Require().NoError(err)
		s.Equal(models.TierUnlimited, q.Tier)
		s.Equal(int64(10_000_000), q.Bytes)
	})

	s.Run("unknown domain is absent", func() {
		q, err := s.service.ForDomain(s.ctx, "nobody.io")
		s.Require().NoError(err)
		s.Nil(q)
	})
}

func (s *ServiceSuite) TestForDomain_StoreFailure() {
	svc := NewService(failingStore{}, s.service.opts)
	_, err := svc.ForDomain(s.ctx, "acme.io")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
