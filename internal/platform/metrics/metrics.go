package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-level HTTP metrics for the ops surface.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	Ready        *prometheus.GaugeVec
}

// New creates and registers the process metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_http_requests_total",
			Help: "Requests served by the ops router",
		}, []string{"route", "status"}),
		Ready: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roster_dependency_ready",
			Help: "1 when the named dependency passed its last readiness check",
		}, []string{"dependency"}),
	}
}

func (m *Metrics) IncrementRequest(route string, status int) {
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) SetReady(dependency string, ready bool) {
	v := 0.0
	if ready {
		v = 1
	}
	m.Ready.WithLabelValues(dependency).Set(v)
}
