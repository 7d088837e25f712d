// Package main provides the campus chatbot server entry point.
package main

import (
	"context"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/config"
	"github.com/adityaraj161616/campus-chatbot-go/internal/logger"
	"github.com/adityaraj161616/campus-chatbot-go/internal/metrics"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
)

// cleanupExpiredSessions periodically deletes sessions idle past the TTL
func cleanupExpiredSessions(ctx context.Context, db *storage.DB, interval time.Duration, m *metrics.Metrics, log *logger.Logger) {
	// Run initial cleanup after configured delay to let server stabilize
	select {
	case <-ctx.Done():
		return
	case <-time.After(config.SessionCleanupInitialDelay):
		performSessionCleanup(ctx, db, m, log)
	}

	// Then run cleanup at configured interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			performSessionCleanup(ctx, db, m, log)
		}
	}
}

// performSessionCleanup executes one cleanup pass
func performSessionCleanup(ctx context.Context, db *storage.DB, m *metrics.Metrics, log *logger.Logger) {
	deleted, err := db.DeleteExpiredSessions(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to cleanup expired sessions")
		return
	}

	m.RecordExpiredSessions(deleted)

	remaining, _ := db.CountSessions(ctx)
	log.WithFields(map[string]any{
		"deleted":   deleted,
		"remaining": remaining,
	}).Info("Session cleanup complete")
}

// updateSessionMetrics periodically updates the active session gauge
func updateSessionMetrics(ctx context.Context, db *storage.DB, m *metrics.Metrics, log *logger.Logger) {
	ticker := time.NewTicker(config.MetricsUpdateInterval)
	defer ticker.Stop()

	// Run initial update immediately
	performSessionMetricsUpdate(ctx, db, m, log)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			performSessionMetricsUpdate(ctx, db, m, log)
		}
	}
}

// performSessionMetricsUpdate refreshes the session gauge
func performSessionMetricsUpdate(ctx context.Context, db *storage.DB, m *metrics.Metrics, log *logger.Logger) {
	count, err := db.CountSessions(ctx)
	if err != nil {
		log.WithError(err).Debug("Failed to count sessions for metrics")
		return
	}
	m.SetActiveSessions(count)
}
