package quota

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"roster/internal/tenant/metrics"
	"roster/internal/tenant/models"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
)

type Store interface {
	FindByDomain(ctx context.Context, domain string) (*models.TenantQuota, error)
}

// Service resolves tenant quotas by domain.
type Service struct {
	store    Store
	opts     Options
	resolver *Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(store Store, opts Options, options ...Option) *Service {
	s := &Service{store: store, opts: opts}
	for _, o := range options {
		o(s)
	}
	s.resolver = NewResolver(opts, WithResolverLogger(s.logger), WithResolverMetrics(s.metrics))
	return s
}

// ForDomain returns the resolved quota, or nil when the domain has no row.
func (s *Service) ForDomain(ctx context.Context, domain string) (*models.Quota, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveForDomain(start)
		}
	}()

	domain = strings.ToLower(strings.TrimSpace(domain))
	row, err := s.store.FindByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tenant quota")
	}

	tier, _ := s.opts.TierFor(row.SubscriptionLevel)
	return &models.Quota{
		Domain:        row.Domain,
		Tier:          tier,
		Bytes:         s.resolver.ResolveBytes(*row),
		AdminUsername: row.AdminUsername,
	}, nil
}

// Resolver exposes the byte resolver for callers that already hold a row.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}
