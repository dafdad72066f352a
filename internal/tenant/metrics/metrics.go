package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for tenant quota resolution.
type Metrics struct {
	QuotaFallbacks    *prometheus.CounterVec
	ForDomainDuration prometheus.Histogram
}

// New creates a new Metrics instance with all tenant module metrics registered.
func New() *Metrics {
	return &Metrics{
		QuotaFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_tenant_quota_fallbacks_total",
			Help: "Storage sizes that could not be used and fell back to the basic baseline",
		}, []string{"reason"}),
		ForDomainDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_tenant_quota_lookup_duration_seconds",
			Help:    "Duration of tenant quota lookups by domain",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementFallback(reason string) {
	m.QuotaFallbacks.WithLabelValues(reason).Inc()
}

// ObserveForDomain records the duration of a ForDomain call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveForDomain(start time.Time) {
	m.ForDomainDuration.Observe(time.Since(start).Seconds())
}
