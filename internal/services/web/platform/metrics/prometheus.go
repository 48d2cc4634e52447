package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder with metrics on a dedicated registry.
type PrometheusRecorder struct {
	registry           *prometheus.Registry
	navigationTotal    *prometheus.CounterVec
	submissionsTotal   *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	activeSessions     *prometheus.GaugeVec
}

// NewPrometheusRecorder creates a recorder with process and Go collectors
// registered alongside the wizard metrics.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &PrometheusRecorder{
		registry: registry,
		navigationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_wizard_navigation_total",
				Help: "Wizard navigation attempts by kind, action, and result",
			},
			[]string{"kind", "action", "result"},
		),
		submissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_submissions_total",
				Help: "Profile submissions by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		submissionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "onboard_submission_duration_seconds",
				Help:    "Duration of profile submissions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		activeSessions: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "onboard_active_sessions",
				Help: "Live wizard sessions by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveNavigation records one step navigation attempt.
func (p *PrometheusRecorder) ObserveNavigation(kind, action string, advanced bool) {
	result := "moved"
	if !advanced {
		result = "blocked"
	}
	p.navigationTotal.WithLabelValues(kind, action, result).Inc()
}

// ObserveSubmission records one gateway submission.
func (p *PrometheusRecorder) ObserveSubmission(kind, outcome string, duration time.Duration) {
	p.submissionsTotal.WithLabelValues(kind, outcome).Inc()
	p.submissionDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetActiveSessions reports the number of live wizard sessions.
func (p *PrometheusRecorder) SetActiveSessions(kind string, count int) {
	p.activeSessions.WithLabelValues(kind).Set(float64(count))
}

// Handler exposes the registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
