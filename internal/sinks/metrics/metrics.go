// Package metrics records latency and outcome of calls into secondary stores.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roster_sink_call_duration_seconds",
		Help:    "Latency of calls into secondary stores",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	}, []string{"sink", "op"})

	callErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_sink_call_errors_total",
		Help: "Failed calls into secondary stores",
	}, []string{"sink", "op"})
)

// Observe records a call that started at start. Pass the call's error so
// failures are counted.
func Observe(sink, op string, start time.Time, err error) {
	callDuration.WithLabelValues(sink, op).Observe(time.Since(start).Seconds())
	if err != nil {
		callErrors.WithLabelValues(sink, op).Inc()
	}
}
