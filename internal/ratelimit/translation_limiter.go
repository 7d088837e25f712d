// Package ratelimit provides rate limiting mechanisms using token bucket algorithm.
package ratelimit

import (
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/metrics"
)

// TranslationLimiter tracks per-session AI translation usage with hourly limits.
// This is separate from the general session rate limiter to control expensive
// provider calls independently from regular message processing. When a session
// exhausts its quota, replies fall back to glossary translation.
type TranslationLimiter struct {
	pkl        *PerKeyLimiter
	maxPerHour float64
	metrics    *metrics.Metrics
}

// NewTranslationLimiter creates a new translation rate limiter with per-hour limits.
//
// Parameters:
//   - maxPerHour: maximum AI translation calls per session per hour (e.g., 50)
//   - cleanup: cleanup interval for removing inactive limiters (e.g., 5 minutes)
//   - m: optional metrics reporter for tracking drops
//
// The limiter uses a token bucket with:
//   - maxTokens = maxPerHour (burst capacity)
//   - refillRate = maxPerHour / 3600 (tokens per second)
//
// Example:
//
//	limiter := NewTranslationLimiter(50, 5*time.Minute, metrics)
//	defer limiter.Stop()
//
//	if limiter.Allow(sessionID) {
//	    // Make AI translation call
//	}
func NewTranslationLimiter(maxPerHour float64, cleanup time.Duration, m *metrics.Metrics) *TranslationLimiter {
	tl := &TranslationLimiter{
		maxPerHour: maxPerHour,
		metrics:    m,
	}

	tl.pkl = NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     maxPerHour,
		RefillRate:    maxPerHour / 3600.0,
		CleanupPeriod: cleanup,
	})

	if m != nil {
		tl.pkl.OnDrop(func() {
			m.RecordRateLimiterDrop("translation")
		})
	}

	return tl
}

// Allow checks if an AI translation call for sessionID is allowed under the rate limit.
// Returns true if allowed (token consumed), false if rate limit exceeded.
func (tl *TranslationLimiter) Allow(sessionID string) bool {
	return tl.pkl.Allow(sessionID)
}

// GetAvailable returns the number of remaining tokens for a session.
// Returns maxPerHour if the session has no limiter yet.
func (tl *TranslationLimiter) GetAvailable(sessionID string) float64 {
	if sessionID == "" {
		return tl.maxPerHour
	}
	return tl.pkl.GetAvailable(sessionID)
}

// GetActiveCount returns the current number of active session limiters.
func (tl *TranslationLimiter) GetActiveCount() int {
	return tl.pkl.GetActiveCount()
}

// Stop gracefully stops the cleanup goroutine.
// Safe to call multiple times.
func (tl *TranslationLimiter) Stop() {
	tl.pkl.Stop()
}
