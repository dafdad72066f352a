package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the account lifecycle.
type Metrics struct {
	AccountsCreated   *prometheus.CounterVec
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	SinkFailures      *prometheus.CounterVec
	ReconcileRuns     *prometheus.CounterVec
	ReconcileAccounts prometheus.Counter
	LastReconcile     prometheus.Gauge
}

// New creates a new Metrics instance with all account module metrics registered.
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_accounts_created_total",
			Help: "Accounts created, by whether activation is pending",
		}, []string{"mode"}),
		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_account_operations_total",
			Help: "Lifecycle operations by outcome",
		}, []string{"op", "outcome"}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_account_operation_duration_seconds",
			Help:    "Duration of lifecycle operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}),
		SinkFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_account_sink_failures_total",
			Help: "Secondary store updates that failed after the account was persisted",
		}, []string{"sink", "op"}),
		ReconcileRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_reconcile_runs_total",
			Help: "Reconciliation sweeps by trigger and outcome",
		}, []string{"trigger", "outcome"}),
		ReconcileAccounts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_reconcile_accounts_total",
			Help: "Accounts visited by reconciliation sweeps",
		}),
		LastReconcile: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "roster_reconcile_last_success_timestamp_seconds",
			Help: "Unix time of the last sweep that completed without errors",
		}),
	}
}

func (m *Metrics) IncrementCreated(pendingActivation bool) {
	mode := "active"
	if pendingActivation {
		mode = "pending_activation"
	}
	m.AccountsCreated.WithLabelValues(mode).Inc()
}

// ObserveOperation records the outcome and latency of op.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(op, outcome string, start time.Time) {
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementSinkFailure(sink, op string) {
	m.SinkFailures.WithLabelValues(sink, op).Inc()
}

func (m *Metrics) ObserveReconcile(trigger string, visited int, err error, finished time.Time) {
	m.ReconcileAccounts.Add(float64(visited))
	if err != nil {
		m.ReconcileRuns.WithLabelValues(trigger, "error").Inc()
		return
	}
	m.ReconcileRuns.WithLabelValues(trigger, "ok").Inc()
	m.LastReconcile.Set(float64(finished.Unix()))
}
