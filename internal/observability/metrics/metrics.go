// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cognitive_screening"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Session metrics
	SessionsStarted prometheus.Counter
	SessionsActive  prometheus.Gauge
	SessionsReset   prometheus.Counter

	// Instrument metrics
	InstrumentRunsStarted   *prometheus.CounterVec
	InstrumentRunsCompleted *prometheus.CounterVec
	TurnsScored             *prometheus.CounterVec
	TurnsSkipped            *prometheus.CounterVec
	ManualAdvances          *prometheus.CounterVec
	TiersAssigned           *prometheus.CounterVec

	// Speech port metrics
	SpeakTotal           prometheus.Counter
	SpeakErrors          prometheus.Counter
	ListenWindowsOpened  prometheus.Counter
	TranscriptsReceived  prometheus.Counter
	TranscriptsDiscarded prometheus.Counter

	// Event publish metrics
	EventPublishTotal   *prometheus.CounterVec
	EventPublishErrors  *prometheus.CounterVec
	EventPublishLatency *prometheus.HistogramVec

	// HTTP API metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of screening sessions started",
		}),
		SessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of sessions currently in a running phase",
		}),
		SessionsReset: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_reset_total",
			Help:      "Total number of session resets",
		}),

		InstrumentRunsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instrument_runs_started_total",
			Help:      "Total number of instrument runs started",
		}, []string{"instrument"}),
		InstrumentRunsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instrument_runs_completed_total",
			Help:      "Total number of instrument runs completed",
		}, []string{"instrument"}),
		TurnsScored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_scored_total",
			Help:      "Total number of turns finalized with a transcript",
		}, []string{"instrument"}),
		TurnsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_skipped_total",
			Help:      "Total number of turns finalized by skip or manual advance",
		}, []string{"instrument"}),
		ManualAdvances: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manual_advances_total",
			Help:      "Total number of manual advance operations",
		}, []string{"instrument"}),
		TiersAssigned: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tiers_assigned_total",
			Help:      "Total number of result interpretations by tier",
		}, []string{"instrument", "tier"}),

		SpeakTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "speak_total",
			Help:      "Total number of speech output requests",
		}),
		SpeakErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "speak_errors_total",
			Help:      "Total number of failed speech output requests",
		}),
		ListenWindowsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listen_windows_opened_total",
			Help:      "Total number of listening windows opened",
		}),
		TranscriptsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_received_total",
			Help:      "Total number of transcripts delivered to a session",
		}),
		TranscriptsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_discarded_total",
			Help:      "Total number of transcripts arriving outside a listening window",
		}),

		EventPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_total",
			Help:      "Total number of screening events published",
		}, []string{"topic", "event_type"}),
		EventPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Total number of event publish errors",
		}, []string{"topic", "event_type"}),
		EventPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_publish_latency_seconds",
			Help:      "Event publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP API requests",
		}, []string{"method", "path", "code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"method", "path"}),
	}
}

// RecordSessionStart records a session entering a running phase.
func (m *Metrics) RecordSessionStart() {
	m.SessionsStarted.Inc()
	m.SessionsActive.Inc()
}

// RecordSessionEnd records a session reaching the result phase.
func (m *Metrics) RecordSessionEnd() {
	m.SessionsActive.Dec()
}

// RecordReset records a session reset.
func (m *Metrics) RecordReset() {
	m.SessionsReset.Inc()
}

// RecordTurn records a finalized turn.
func (m *Metrics) RecordTurn(instrument string, skipped bool) {
	if skipped {
		m.TurnsSkipped.WithLabelValues(instrument).Inc()
	} else {
		m.TurnsScored.WithLabelValues(instrument).Inc()
	}
}

// RecordTier records an interpreted result tier.
func (m *Metrics) RecordTier(instrument, tier string) {
	m.TiersAssigned.WithLabelValues(instrument, tier).Inc()
}

// RecordEventPublish records a publish attempt to a topic.
func (m *Metrics) RecordEventPublish(topic, eventType string, err error, latencySeconds float64) {
	m.EventPublishTotal.WithLabelValues(topic, eventType).Inc()
	if err != nil {
		m.EventPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
	m.EventPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
}
