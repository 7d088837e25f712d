// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file contains the Gemini implementation of the Translator interface.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// geminiTranslator translates text using the Gemini API.
// It implements the Translator interface.
type geminiTranslator struct {
	client *genai.Client
	model  string
}

// newGeminiTranslator creates a new Gemini-based translator.
// Returns nil if apiKey is empty (provider disabled).
func newGeminiTranslator(ctx context.Context, apiKey, model string) (*geminiTranslator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: provider disabled when no API key
	}

	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiTranslator{
		client: client,
		model:  model,
	}, nil
}

// Translate renders English text into the target language.
func (t *geminiTranslator) Translate(ctx context.Context, text string, target i18n.Language) (string, error) {
	if t == nil {
		return "", errors.New("translator is nil")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2), // Low temperature for faithful translation
		MaxOutputTokens: 1000,
	}

	start := time.Now()
	result, err := t.client.Models.GenerateContent(
		ctx,
		t.model,
		genai.Text(ResponsePrompt(text, target)),
		config,
	)
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "translation API call failed",
			"provider", "gemini",
			"model", t.model,
			"target_language", target,
			"input_length", len(text),
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	translated := strings.TrimSpace(result.Text())
	if translated == "" {
		return "", errors.New("empty response from model")
	}

	if result.UsageMetadata != nil {
		slog.DebugContext(ctx, "translation completed",
			"provider", "gemini",
			"model", t.model,
			"target_language", target,
			"input_tokens", result.UsageMetadata.PromptTokenCount,
			"output_tokens", result.UsageMetadata.CandidatesTokenCount,
			"duration_ms", duration.Milliseconds())
	}

	return translated, nil
}

// TranslateRaw sends an arbitrary prompt and returns the trimmed reply.
// Used by the timetable translator, which carries its own prompt format.
func (t *geminiTranslator) TranslateRaw(ctx context.Context, prompt string) (string, error) {
	if t == nil {
		return "", errors.New("translator is nil")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2),
		MaxOutputTokens: 1000,
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		return "", errors.New("empty response from model")
	}
	return reply, nil
}

// Provider returns the provider type for this translator.
func (t *geminiTranslator) Provider() Provider {
	return ProviderGemini
}

// Close releases resources held by the translator.
// Safe to call on nil receiver.
func (t *geminiTranslator) Close() error {
	if t == nil {
		return nil
	}
	// Note: genai.Client does not require explicit cleanup in current SDK version
	return nil
}
