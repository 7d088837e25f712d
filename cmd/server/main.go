// Package main provides the campus chatbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/buildinfo"
	"github.com/adityaraj161616/campus-chatbot-go/internal/chat"
	"github.com/adityaraj161616/campus-chatbot-go/internal/config"
	"github.com/adityaraj161616/campus-chatbot-go/internal/flow"
	"github.com/adityaraj161616/campus-chatbot-go/internal/logger"
	"github.com/adityaraj161616/campus-chatbot-go/internal/metrics"
	"github.com/adityaraj161616/campus-chatbot-go/internal/ratelimit"
	"github.com/adityaraj161616/campus-chatbot-go/internal/sentry"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
	"github.com/adityaraj161616/campus-chatbot-go/internal/translate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(logger.Options{
		Level:               cfg.LogLevel,
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	// Route package-level slog calls through the configured handler
	logger.SetDefault(log)
	log.WithField("version", buildinfo.Version).Info("Starting campus chatbot server")

	// Initialize Sentry error tracking (no-op when DSN is empty)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	}
	defer sentry.Flush(2 * time.Second)

	// Connect to database with configured session TTL
	db, err := storage.New(cfg.SQLitePath(), cfg.SessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).
		WithField("session_ttl", cfg.SessionTTL).
		Info("Database connected")

	// Seed campus data (programs, timetables, scholarships, circulars) on
	// first boot so the chatbot answers out of the box
	if err := storage.SeedIfEmpty(context.Background(), db); err != nil {
		log.WithError(err).Error("Failed to seed campus data")
		os.Exit(1)
	}

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create translation provider (optional, glossary fallback covers its absence)
	var provider translate.Translator
	if cfg.HasTranslateProvider() {
		provider, err = translate.NewTranslator(context.Background(), cfg)
		if err != nil {
			log.WithError(err).Warn("Failed to create translation provider, falling back to glossary")
			provider = nil
		} else {
			log.WithField("provider", provider.Provider()).Info("Translation provider created")
		}
	} else {
		log.Info("No translation API key configured, glossary translation only")
	}

	translator := translate.NewService(provider)
	translator.OnAttempt = func(method translate.Method, success bool) {
		m.RecordTranslationAttempt(string(method), success)
	}

	// Create dialogue flow controller
	controller := flow.NewController(db, translator)

	// Create rate limiters
	chatLimiter := ratelimit.NewChatLimiter(ratelimit.ChatLimiterConfig{
		SessionBurst:        cfg.Chat.SessionRateLimitBurst,
		SessionRefillPerSec: cfg.Chat.SessionRateLimitRefillPerSec,
		GlobalRPS:           cfg.Chat.GlobalRateLimitRPS,
		CleanupPeriod:       config.RateLimiterCleanupInterval,
		Metrics:             m,
	})
	defer chatLimiter.Stop()

	aiQuota := ratelimit.NewTranslationLimiter(float64(cfg.Chat.TranslationMaxPerHour), config.RateLimiterCleanupInterval, m)
	defer aiQuota.Stop()

	// Create chat handler
	chatHandler := chat.NewHandler(cfg.Chat, db, controller, translator, chatLimiter, aiQuota, m)
	log.Info("Chat handler created")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(sentryMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	// Setup routes
	setupRoutes(router, chatHandler, db, registry, cfg)

	// Create HTTP server with timeouts sized for chat turn handling
	// See internal/config/timeouts.go for detailed explanations
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.ChatHTTPRead,
		WriteTimeout: config.ChatHTTPWrite,
		IdleTimeout:  config.ChatHTTPIdle,
	}

	// Start background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	// Expired session cleanup goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in session cleanup goroutine")
			}
		}()
		cleanupExpiredSessions(ctx, db, cfg.SessionCleanupInterval, m, log)
	}()

	// Session gauge updater goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in session metrics goroutine")
			}
		}()
		updateSessionMetrics(ctx, db, m, log)
	}()

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Cancel context to stop background goroutines
	cancel()

	// Wait for goroutines to finish (with timeout)
	goDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(goDone)
	}()

	select {
	case <-goDone:
		log.Info("All background goroutines stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for goroutines to stop")
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}

	// Flush pending remote log records
	if err := log.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush remote logs")
	}

	log.Info("Server stopped")
}
