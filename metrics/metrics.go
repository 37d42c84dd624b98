// Package metrics exposes Prometheus instrumentation for simulation runs.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Metrics struct {
	RunsTotal      *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	HorizonTrades  prometheus.Histogram
	DD50Risk       *prometheus.GaugeVec
	InFlight       prometheus.Gauge
	StaleResponses prometheus.Counter
}

// New registers every collector with reg. Pass prometheus.NewRegistry() in
// tests to keep them isolated from the default registry.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "survival"
	}
	f := promauto.With(reg)

	return &Metrics{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sim",
			Name:      "runs_total",
			Help:      "Simulation requests answered, by outcome",
		}, []string{"outcome"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sim",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a simulation run by volatility level",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"vol_level"}),
		HorizonTrades: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sim",
			Name:      "horizon_trades",
			Help:      "Horizon used by completed runs",
			Buckets:   prometheus.LinearBuckets(40, 20, 12),
		}),
		DD50Risk: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sim",
			Name:      "dd50_risk",
			Help:      "Most recent probability of a 50% drawdown by volatility level",
		}, []string{"vol_level"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "in_flight",
			Help:      "Requests currently being simulated",
		}),
		StaleResponses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer request superseded them",
		}),
	}
}

// ObserveRun records a successful run.
func (m *Metrics) ObserveRun(volLevel string, elapsed time.Duration, horizon int, dd50 float64) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(OutcomeOK).Inc()
	m.RunDuration.WithLabelValues(volLevel).Observe(elapsed.Seconds())
	m.HorizonTrades.Observe(float64(horizon))
	m.DD50Risk.WithLabelValues(volLevel).Set(dd50)
}

func (m *Metrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(OutcomeError).Inc()
}

func (m *Metrics) Started() {
	if m == nil {
		return
	}
	m.InFlight.Inc()
}

func (m *Metrics) Finished() {
	if m == nil {
		return
	}
	m.InFlight.Dec()
}

func (m *Metrics) Stale() {
	if m == nil {
		return
	}
	m.StaleResponses.Inc()
}
