package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("Port = %q, want 10000", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.Chat.TurnTimeout != ChatTurnProcessing {
		t.Errorf("Chat.TurnTimeout = %v, want %v", cfg.Chat.TurnTimeout, ChatTurnProcessing)
	}
	if cfg.Chat.MaxOptions != 20 {
		t.Errorf("Chat.MaxOptions = %d, want 20", cfg.Chat.MaxOptions)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("SESSION_RATE_LIMIT_BURST", "25")
	t.Setenv("TRANSLATE_PROVIDER", "groq")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
	}
	if cfg.Chat.SessionRateLimitBurst != 25.0 {
		t.Errorf("SessionRateLimitBurst = %v, want 25", cfg.Chat.SessionRateLimitBurst)
	}
	if cfg.TranslateProvider != "groq" {
		t.Errorf("TranslateProvider = %q, want groq", cfg.TranslateProvider)
	}
}

func TestLoad_InvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("CHAT_MAX_OPTIONS", "twenty")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want default 24h", cfg.SessionTTL)
	}
	if cfg.Chat.MaxOptions != 20 {
		t.Errorf("Chat.MaxOptions = %d, want default 20", cfg.Chat.MaxOptions)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:                   "10000",
			DataDir:                "/data",
			SessionTTL:             24 * time.Hour,
			SessionCleanupInterval: time.Hour,
			SentrySampleRate:       1.0,
			Chat: ChatConfig{
				TurnTimeout:                  30 * time.Second,
				SessionRateLimitBurst:        10,
				SessionRateLimitRefillPerSec: 0.5,
				GlobalRateLimitRPS:           100,
				MaxMessageLength:             2000,
				MaxOptions:                   20,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid config", func(*Config) {}, ""},
		{"missing port", func(c *Config) { c.Port = "" }, "PORT"},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, "DATA_DIR"},
		{"non-positive session TTL", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"bad sentry sample rate", func(c *Config) { c.SentrySampleRate = 2 }, "SENTRY_SAMPLE_RATE"},
		{"unknown provider", func(c *Config) { c.TranslateProvider = "deepl" }, "TRANSLATE_PROVIDER"},
		{"non-positive turn timeout", func(c *Config) { c.Chat.TurnTimeout = 0 }, "CHAT_TURN_TIMEOUT"},
		{"non-positive burst", func(c *Config) { c.Chat.SessionRateLimitBurst = 0 }, "SESSION_RATE_LIMIT_BURST"},
		{"non-positive max options", func(c *Config) { c.Chat.MaxOptions = 0 }, "CHAT_MAX_OPTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.SQLitePath(); got != "/data/campus.db" {
		t.Errorf("SQLitePath() = %q, want /data/campus.db", got)
	}
}

func TestHasTranslateProvider(t *testing.T) {
	cfg := &Config{}
	if cfg.HasTranslateProvider() {
		t.Error("HasTranslateProvider() = true with no keys")
	}
	cfg.GroqAPIKey = "gsk-test"
	if !cfg.HasTranslateProvider() {
		t.Error("HasTranslateProvider() = false with Groq key set")
	}
}
