// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file contains factory functions for creating translators.
package translate

import (
	"context"
	"log/slog"

	"github.com/adityaraj161616/campus-chatbot-go/internal/config"
)

// NewTranslator creates the primary Translator from configuration.
//
// Provider selection logic:
//  1. An explicit TRANSLATE_PROVIDER value wins when its API key is set.
//  2. Otherwise Gemini is preferred when GEMINI_API_KEY is set.
//  3. Otherwise Groq is used when GROQ_API_KEY is set.
//  4. Returns nil when no provider is configured; the caller then runs on
//     the glossary fallback alone.
func NewTranslator(ctx context.Context, cfg *config.Config) (Translator, error) {
	switch Provider(cfg.TranslateProvider) {
	case ProviderGemini:
		if cfg.GeminiAPIKey != "" {
			return buildGemini(ctx, cfg)
		}
		slog.WarnContext(ctx, "TRANSLATE_PROVIDER=gemini but GEMINI_API_KEY is empty")
	case ProviderGroq:
		if cfg.GroqAPIKey != "" {
			return buildGroq(ctx, cfg)
		}
		slog.WarnContext(ctx, "TRANSLATE_PROVIDER=groq but GROQ_API_KEY is empty")
	}

	if cfg.GeminiAPIKey != "" {
		return buildGemini(ctx, cfg)
	}
	if cfg.GroqAPIKey != "" {
		return buildGroq(ctx, cfg)
	}

	slog.InfoContext(ctx, "no LLM provider configured, translation runs on glossary only")
	return nil, nil
}

func buildGemini(ctx context.Context, cfg *config.Config) (Translator, error) {
	t, err := newGeminiTranslator(ctx, cfg.GeminiAPIKey, cfg.GeminiTranslateModel)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "translator configured",
		"provider", ProviderGemini,
		"model", t.model)
	return t, nil
}

func buildGroq(ctx context.Context, cfg *config.Config) (Translator, error) {
	t, err := newOpenAITranslator(ctx, ProviderGroq, cfg.GroqAPIKey, cfg.GroqTranslateModel)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "translator configured",
		"provider", ProviderGroq,
		"model", t.model)
	return t, nil
}
