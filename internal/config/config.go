// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, translation providers, session handling, and rate limits.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// LLM Configuration
	GeminiAPIKey string // Gemini API key for AI translation
	GroqAPIKey   string // Groq API key (alternative translation provider)

	// LLM Model Configuration (optional, defaults apply if empty)
	GeminiTranslateModel string // Gemini model for translation
	GroqTranslateModel   string // Groq model for translation

	// TranslateProvider selects the primary translator: "gemini" or "groq".
	// Empty means auto: gemini when its key is set, groq otherwise.
	TranslateProvider string

	// Better Stack log shipping (empty token disables)
	BetterStackToken    string
	BetterStackEndpoint string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Sentry error reporting (empty DSN disables)
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Data directory for SQLite database

	// Session Configuration
	SessionTTL             time.Duration // Idle sessions older than this are deleted
	SessionCleanupInterval time.Duration // How often the cleanup job runs

	// Chat Configuration
	Chat ChatConfig
}

// ChatConfig holds chat-turn specific configuration
type ChatConfig struct {
	// TurnTimeout bounds a full chat turn including translation calls.
	TurnTimeout time.Duration

	// Rate Limits (Token Bucket Algorithm)
	SessionRateLimitBurst        float64 // Maximum burst tokens per session (default: 10)
	SessionRateLimitRefillPerSec float64 // Tokens refilled per second (default: 0.5 = 1 per 2s)

	GlobalRateLimitRPS float64 // Global rate limit in requests per second (default: 100)

	// MaxMessageLength caps inbound chat message size in runes.
	MaxMessageLength int

	// MaxOptions caps the number of selectable options returned per turn.
	MaxOptions int

	// TranslationMaxPerHour caps AI translation calls per session per hour.
	// Exhausted sessions fall back to glossary translation.
	TranslationMaxPerHour int
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// LLM Configuration
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),

		// LLM Model Configuration (empty = use defaults from translate package)
		GeminiTranslateModel: getEnv("GEMINI_TRANSLATE_MODEL", ""),
		GroqTranslateModel:   getEnv("GROQ_TRANSLATE_MODEL", ""),

		TranslateProvider: getEnv("TRANSLATE_PROVIDER", ""),

		// Better Stack
		BetterStackToken:    getEnv("BETTERSTACK_TOKEN", ""),
		BetterStackEndpoint: getEnv("BETTERSTACK_ENDPOINT", ""),

		// Metrics Authentication
		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		// Sentry
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),
		SentrySampleRate:  getFloatEnv("SENTRY_SAMPLE_RATE", 1.0),

		// Server Configuration
		Port:            getEnv("PORT", "10000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", GracefulShutdown),

		// Data Configuration
		DataDir: getEnv("DATA_DIR", getDefaultDataDir()),

		// Session Configuration
		SessionTTL:             getDurationEnv("SESSION_TTL", 24*time.Hour),
		SessionCleanupInterval: getDurationEnv("SESSION_CLEANUP_INTERVAL", SessionCleanupInterval),

		// Chat Configuration
		Chat: ChatConfig{
			TurnTimeout:                  getDurationEnv("CHAT_TURN_TIMEOUT", ChatTurnProcessing),
			SessionRateLimitBurst:        getFloatEnv("SESSION_RATE_LIMIT_BURST", 10.0),
			SessionRateLimitRefillPerSec: getFloatEnv("SESSION_RATE_LIMIT_REFILL_PER_SEC", 0.5), // 1 per 2s
			GlobalRateLimitRPS:           getFloatEnv("GLOBAL_RATE_LIMIT_RPS", 100.0),
			MaxMessageLength:             getIntEnv("CHAT_MAX_MESSAGE_LENGTH", 2000),
			MaxOptions:                   getIntEnv("CHAT_MAX_OPTIONS", 20),
			TranslationMaxPerHour:        getIntEnv("CHAT_TRANSLATION_MAX_PER_HOUR", 30),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %v", c.SessionTTL))
	}
	if c.SessionCleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive, got %v", c.SessionCleanupInterval))
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		errs = append(errs, fmt.Errorf("SENTRY_SAMPLE_RATE must be in [0,1], got %v", c.SentrySampleRate))
	}
	switch c.TranslateProvider {
	case "", "gemini", "groq":
	default:
		errs = append(errs, fmt.Errorf("TRANSLATE_PROVIDER must be gemini or groq, got %q", c.TranslateProvider))
	}
	if err := c.Chat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chat config: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks chat configuration bounds.
func (c *ChatConfig) Validate() error {
	var errs []error

	if c.TurnTimeout <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_TURN_TIMEOUT must be positive, got %v", c.TurnTimeout))
	}
	if c.SessionRateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_RATE_LIMIT_BURST must be positive, got %v", c.SessionRateLimitBurst))
	}
	if c.SessionRateLimitRefillPerSec <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_RATE_LIMIT_REFILL_PER_SEC must be positive, got %v", c.SessionRateLimitRefillPerSec))
	}
	if c.GlobalRateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("GLOBAL_RATE_LIMIT_RPS must be positive, got %v", c.GlobalRateLimitRPS))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive, got %d", c.MaxMessageLength))
	}
	if c.MaxOptions <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_MAX_OPTIONS must be positive, got %d", c.MaxOptions))
	}
	if c.TranslationMaxPerHour <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_TRANSLATION_MAX_PER_HOUR must be positive, got %d", c.TranslationMaxPerHour))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "campus.db")
}

// HasTranslateProvider returns true if at least one translation provider is configured.
func (c *Config) HasTranslateProvider() bool {
	return c.GeminiAPIKey != "" || c.GroqAPIKey != ""
}
