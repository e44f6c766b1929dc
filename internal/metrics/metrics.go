// Package metrics defines the Prometheus collectors of the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	ProfilerRequests *prometheus.CounterVec
	ProfilerDuration *prometheus.HistogramVec
	ReadinessScore   prometheus.Histogram
	Submissions      *prometheus.CounterVec
	ActiveSessions   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProfilerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profiler_requests_total",
				Help: "Total number of profiler operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		ProfilerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "profiler_request_duration_seconds",
				Help:    "Profiler operation duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
			},
			[]string{"operation"},
		),
		ReadinessScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "career_readiness_score",
				Help:    "Distribution of generated readiness scores",
				Buckets: []float64{70, 75, 80, 85, 90, 95, 100},
			},
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_submissions_total",
				Help: "Total number of chat submissions by persona, kind and outcome",
			},
			[]string{"agent", "kind", "outcome"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chat_sessions",
				Help: "Number of chat sessions held in memory",
			},
		),
	}
	reg.MustRegister(m.ProfilerRequests, m.ProfilerDuration, m.ReadinessScore, m.Submissions, m.ActiveSessions)
	return m
}
