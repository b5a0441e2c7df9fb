// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dormshare"

// Metrics holds every collector the server updates.
type Metrics struct {
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	ExpensesRecorded prometheus.Counter
	SplitsCreated    prometheus.Counter
	SplitsSettled    *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.NewRegistry() in
// tests to avoid duplicate registration on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		ExpensesRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "expenses_recorded_total",
			Help:      "Expenses recorded.",
		}),
		SplitsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "splits_created_total",
			Help:      "Splits allocated across all expenses.",
		}),
		SplitsSettled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "settle_attempts_total",
			Help:      "Settle calls that succeeded, by whether the split was already settled.",
		}, []string{"result"}),
	}
}

// ExpenseRecorded implements ledger.Recorder.
func (m *Metrics) ExpenseRecorded(splits int) {
	m.ExpensesRecorded.Inc()
	m.SplitsCreated.Add(float64(splits))
}

// SplitsAllocated implements ledger.Recorder.
func (m *Metrics) SplitsAllocated(splits int) {
	m.SplitsCreated.Add(float64(splits))
}

// SplitSettled implements ledger.Recorder.
func (m *Metrics) SplitSettled(transitioned bool) {
	result := "already_settled"
	if transitioned {
		result = "settled"
	}
	m.SplitsSettled.WithLabelValues(result).Inc()
}
