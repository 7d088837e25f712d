package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat turn metrics
	ChatTurnsTotal       *prometheus.CounterVec
	ChatTurnDuration     *prometheus.HistogramVec
	ChatMessagesRejected *prometheus.CounterVec

	// Translation metrics
	TranslationAttemptsTotal *prometheus.CounterVec
	TranslationDuration      *prometheus.HistogramVec

	// Session metrics
	SessionsActive          prometheus.Gauge
	SessionVersionConflicts prometheus.Counter
	SessionsExpiredTotal    prometheus.Counter

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ChatTurnsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_turns_total",
				Help: "Total number of chat turns by intent and status",
			},
			[]string{"intent", "status"}, // status: success, error
		),

		ChatTurnDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_chat_turn_duration_seconds",
				Help:    "Chat turn processing duration in seconds by intent",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30}, // Matches 30s turn timeout
			},
			[]string{"intent"},
		),

		ChatMessagesRejected: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_messages_rejected_total",
				Help: "Total number of rejected chat messages by reason",
			},
			[]string{"reason"}, // reason: empty, too_long, rate_limited, invalid_json
		),

		TranslationAttemptsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_translation_attempts_total",
				Help: "Total number of translation attempts by method and outcome",
			},
			[]string{"method", "success"}, // method: ai, glossary, passthrough
		),

		TranslationDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_translation_duration_seconds",
				Help:    "Translation call duration in seconds by method",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10}, // Glossary is sub-ms, AI is 1-4s
			},
			[]string{"method"},
		),

		SessionsActive: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "campus_sessions_active",
				Help: "Number of sessions currently stored",
			},
		),

		SessionVersionConflicts: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "campus_session_version_conflicts_total",
				Help: "Total number of session writes rejected by the version guard",
			},
		),

		SessionsExpiredTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "campus_sessions_expired_total",
				Help: "Total number of idle sessions deleted by the cleanup job",
			},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: session, global
		),

		DBQueryDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_db_query_duration_seconds",
				Help:    "Database query duration in seconds by operation",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // SQLite local reads
			},
			[]string{"operation"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_http_errors_total",
				Help: "Total HTTP errors by type and endpoint",
			},
			[]string{"error_type", "endpoint"}, // error_type: timeout, rate_limit, validation, internal
		),
	}

	return m
}

// RecordChatTurn records one completed chat turn.
func (m *Metrics) RecordChatTurn(intent, status string, duration float64) {
	m.ChatTurnsTotal.WithLabelValues(intent, status).Inc()
	m.ChatTurnDuration.WithLabelValues(intent).Observe(duration)
}

// RecordRejectedMessage records an inbound message that never reached a flow.
func (m *Metrics) RecordRejectedMessage(reason string) {
	m.ChatMessagesRejected.WithLabelValues(reason).Inc()
}

// RecordTranslationAttempt records one layer of the translation chain.
func (m *Metrics) RecordTranslationAttempt(method string, success bool) {
	outcome := "false"
	if success {
		outcome = "true"
	}
	m.TranslationAttemptsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordTranslationDuration records how long a translation call took.
func (m *Metrics) RecordTranslationDuration(method string, duration float64) {
	m.TranslationDuration.WithLabelValues(method).Observe(duration)
}

// SetActiveSessions updates the stored session count gauge.
func (m *Metrics) SetActiveSessions(count int) {
	m.SessionsActive.Set(float64(count))
}

// RecordVersionConflict records a session write lost to a concurrent turn.
func (m *Metrics) RecordVersionConflict() {
	m.SessionVersionConflicts.Inc()
}

// RecordExpiredSessions records sessions removed by the cleanup job.
func (m *Metrics) RecordExpiredSessions(count int64) {
	m.SessionsExpiredTotal.Add(float64(count))
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// RecordDBQuery records a database query duration.
func (m *Metrics) RecordDBQuery(operation string, duration float64) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, endpoint string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}
