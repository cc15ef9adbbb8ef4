package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestErrors     *prometheus.CounterVec
	incrementsApplied prometheus.Counter
	mainCounterValue  prometheus.Gauge
	storeLatency      prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helloservice_requests_total",
			Help: "Number of RPC requests handled, by method",
		}, []string{"method"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helloservice_request_errors_total",
			Help: "Number of RPC requests that failed, by method",
		}, []string{"method"}),
		incrementsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "helloservice_increments_applied_total",
			Help: "Number of counter increments committed to the store",
		}),
		mainCounterValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "helloservice_main_counter_value",
			Help: "Last observed value of the main counter",
		}),
		storeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "helloservice_store_op_duration_seconds",
			Help:    "Latency of counter store operations",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
}

// MustRegister registers all collectors with reg. Called once from main;
// tests keep their metrics unregistered.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		m.requestsTotal,
		m.requestErrors,
		m.incrementsApplied,
		m.mainCounterValue,
		m.storeLatency,
	)
}
