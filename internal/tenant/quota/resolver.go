package quota

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"roster/internal/tenant/metrics"
	"roster/internal/tenant/models"
)

// Fallback reasons, also used as metric labels.
const (
	reasonEmpty       = "empty"
	reasonNotNumeric  = "not_numeric"
	reasonOverflow    = "overflow"
	reasonNonPositive = "non_positive"
)

// Resolver turns a tenant's stored storage size into bytes. It never fails:
// a size that cannot be used resolves to the basic tier baseline.
type Resolver struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type ResolverOption func(*Resolver)

func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithResolverMetrics(m *metrics.Metrics) ResolverOption {
	return func(r *Resolver) {
		r.metrics = m
	}
}

func NewResolver(opts Options, options ...ResolverOption) *Resolver {
	r := &Resolver{opts: opts}
	for _, o := range options {
		o(r)
	}
	return r
}

// ResolveBytes parses StorageSize as megabytes and returns bytes.
func (r *Resolver) ResolveBytes(q models.TenantQuota) int64 {
	raw := strings.TrimSpace(q.StorageSize)
	if raw == "" {
		return r.fallback(q, reasonEmpty)
	}
	mb, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return r.fallback(q, reasonOverflow)
		}
		return r.fallback(q, reasonNotNumeric)
	}
	if mb <= 0 {
		return r.fallback(q, reasonNonPositive)
	}
	if mb > math.MaxInt64/bytesPerMB {
		return r.fallback(q, reasonOverflow)
	}
	return mb * bytesPerMB
}

func (r *Resolver) fallback(q models.TenantQuota, reason string) int64 {
	if r.logger != nil {
		r.logger.Warn("tenant storage size unusable, using basic baseline",
			"domain", q.Domain,
			"storage_size", q.StorageSize,
			"reason", reason,
		)
	}
	if r.metrics != nil {
		r.metrics.IncrementFallback(reason)
	}
	return r.opts.BaselineBytes()
}
