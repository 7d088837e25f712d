// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file contains shared types, interfaces, and configuration.
//
// Architecture:
// - Gemini: Uses google.golang.org/genai (official SDK)
// - Groq: Uses github.com/openai/openai-go/v3 (OpenAI-compatible API)
//
// Fallback Strategy (3-layer):
// 1. AI translation: primary provider retried with exponential backoff
// 2. Glossary: deterministic term-table substitution
// 3. Passthrough: English text returned unchanged, marked unsuccessful
package translate

import (
	"context"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// Provider represents an LLM provider.
type Provider string

const (
	// ProviderGemini represents Google's Gemini API (non-OpenAI-compatible).
	ProviderGemini Provider = "gemini"
	// ProviderGroq represents Groq's API (OpenAI-compatible, fast inference).
	ProviderGroq Provider = "groq"
)

// ProviderEndpoint defines the base URL for OpenAI-compatible providers.
// Gemini is not included as it uses a different SDK.
var ProviderEndpoint = map[Provider]string{
	ProviderGroq: "https://api.groq.com/openai/v1/",
}

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// Method identifies which layer of the fallback chain produced a translation.
type Method string

const (
	// MethodAI means the primary LLM translator produced the text.
	MethodAI Method = "ai"
	// MethodGlossary means the deterministic term table produced the text.
	MethodGlossary Method = "glossary"
	// MethodStored means the text was already localized from stored
	// translations and never entered the fallback chain.
	MethodStored Method = "stored"
	// MethodPassthrough means translation failed and the English text was kept.
	MethodPassthrough Method = "passthrough"
)

// Translator defines the interface for LLM-backed text translation.
// Implementations include Gemini (native) and Groq (OpenAI-compatible).
type Translator interface {
	// Translate renders English text into the target language.
	Translate(ctx context.Context, text string, target i18n.Language) (string, error)
	// Provider returns the provider type for metrics.
	Provider() Provider
	// Close releases any resources held by the translator.
	Close() error
}

// Result describes one translated text and how it was produced. Language is
// the language the text is actually in, which falls back to English when the
// whole chain fails.
type Result struct {
	Text     string
	Method   Method
	Language i18n.Language
	Success  bool
}

// RetryConfig defines retry behavior for LLM API calls.
// Uses AWS-recommended Full Jitter exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial).
	// Default: 2 (1 initial + 1 retry)
	MaxAttempts int

	// InitialDelay is the base delay before first retry.
	// Default: 500ms
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	// Default: 3s
	MaxDelay time.Duration
}

// Retry configuration defaults
const (
	DefaultMaxRetryAttempts  = 2
	DefaultInitialRetryDelay = 500 * time.Millisecond
	DefaultMaxRetryDelay     = 3 * time.Second
)

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultMaxRetryAttempts,
		InitialDelay: DefaultInitialRetryDelay,
		MaxDelay:     DefaultMaxRetryDelay,
	}
}

// Default model configurations.
var (
	// DefaultGeminiModel offers fast, inexpensive translation.
	DefaultGeminiModel = "gemini-2.5-flash"

	// DefaultGroqModel is production-grade with strong multilingual accuracy.
	DefaultGroqModel = "llama-3.3-70b-versatile"
)
