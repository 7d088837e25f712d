// Package config provides centralized timeout constants for the application.
//
// These values are tuned around:
//   - Translation provider latency (Gemini and Groq round trips with one retry)
//   - SQLite performance characteristics (WAL mode, busy timeout)
//   - Chat UX expectations (a turn should answer within a few seconds when
//     translation is cached or skipped, and never hang past half a minute)
package config

import "time"

// Chat turn timeouts
const (
	// ChatTurnProcessing is the timeout for processing a single chat turn.
	// This includes session load, flow handling, database queries, and up to
	// three translation calls (input normalization, response, options).
	ChatTurnProcessing = 30 * time.Second

	// ChatHTTPRead is the HTTP server read timeout for chat requests.
	// Payloads are small JSON bodies.
	ChatHTTPRead = 10 * time.Second

	// ChatHTTPWrite is the HTTP server write timeout.
	// Accommodates ChatTurnProcessing plus response serialization.
	ChatHTTPWrite = 35 * time.Second

	// ChatHTTPIdle is the HTTP server idle timeout for keep-alive connections.
	ChatHTTPIdle = 120 * time.Second
)

// Translation timeouts
const (
	// TranslateRequest bounds a single provider call. Gemini and Groq
	// typically answer in 1-4s for short prompts.
	TranslateRequest = 10 * time.Second

	// TranslateRetryInitial is the initial backoff delay before the single
	// retry of a failed provider call.
	TranslateRetryInitial = 500 * time.Millisecond
)

// Database timeouts
const (
	// DatabaseBusyTimeout is SQLite busy_timeout pragma value.
	// Handles concurrent write contention between chat turns and seed/cleanup.
	DatabaseBusyTimeout = 30 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	// Prevents stale connections and allows connection pool refresh.
	DatabaseConnMaxLifetime = time.Hour
)

// Background job intervals
const (
	// SessionCleanupInterval is how often expired sessions are deleted.
	SessionCleanupInterval = time.Hour

	// SessionCleanupInitialDelay is the delay before first session cleanup.
	// Allows server to stabilize before running cleanup.
	SessionCleanupInitialDelay = 5 * time.Minute

	// MetricsUpdateInterval is how often session count metrics are updated.
	MetricsUpdateInterval = 5 * time.Minute

	// RateLimiterCleanupInterval is how often inactive session rate limiters are cleaned.
	RateLimiterCleanupInterval = 5 * time.Minute
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight requests to complete before forceful termination.
	GracefulShutdown = 30 * time.Second
)
