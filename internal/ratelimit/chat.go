package ratelimit

import (
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/metrics"
)

// ChatLimiterConfig configures a ChatLimiter.
type ChatLimiterConfig struct {
	// Per-session token bucket
	SessionBurst        float64 // Maximum burst tokens per session
	SessionRefillPerSec float64 // Tokens refilled per second

	// GlobalRPS is the server-wide request budget in requests per second.
	GlobalRPS float64

	// CleanupPeriod is how often inactive session buckets are removed.
	CleanupPeriod time.Duration

	// Metrics is an optional drop reporter.
	Metrics *metrics.Metrics
}

// ChatLimiter combines a global token bucket with per-session buckets.
// A chat turn must pass both: the global limit protects the server as a
// whole, the session limit stops one client from starving the rest.
type ChatLimiter struct {
	global   *Limiter
	sessions *KeyedLimiter
	metrics  *metrics.Metrics
}

// NewChatLimiter creates the combined chat rate limiter.
// Remember to call Stop() when done to prevent goroutine leaks.
func NewChatLimiter(cfg ChatLimiterConfig) *ChatLimiter {
	return &ChatLimiter{
		global: New(cfg.GlobalRPS, cfg.GlobalRPS),
		sessions: NewKeyedLimiter(KeyedConfig{
			Name:          "session",
			Burst:         cfg.SessionBurst,
			RefillRate:    cfg.SessionRefillPerSec,
			CleanupPeriod: cfg.CleanupPeriod,
			Metrics:       cfg.Metrics,
		}),
		metrics: cfg.Metrics,
	}
}

// Allow checks whether a turn for the given session may proceed.
// The session bucket is checked first so a throttled session does not
// consume global budget.
func (cl *ChatLimiter) Allow(sessionID string) bool {
	if !cl.sessions.Allow(sessionID) {
		return false
	}
	if !cl.global.Allow() {
		if cl.metrics != nil {
			cl.metrics.RecordRateLimiterDrop("global")
		}
		return false
	}
	return true
}

// ActiveSessions returns the number of sessions with live buckets.
func (cl *ChatLimiter) ActiveSessions() int {
	return cl.sessions.GetActiveCount()
}

// Stop gracefully stops the cleanup goroutine.
// Safe to call multiple times.
func (cl *ChatLimiter) Stop() {
	cl.sessions.Stop()
}
