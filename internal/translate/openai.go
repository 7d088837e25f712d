// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file contains the OpenAI-compatible implementation of the Translator
// interface, used for Groq via a custom BaseURL.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// openaiTranslator translates text using an OpenAI-compatible API.
// It implements the Translator interface.
type openaiTranslator struct {
	client   openai.Client
	model    string
	provider Provider
}

// newOpenAITranslator creates a new OpenAI-compatible translator.
// Returns nil if apiKey is empty (provider disabled).
func newOpenAITranslator(_ context.Context, provider Provider, apiKey, model string) (*openaiTranslator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: provider disabled when no API key
	}

	baseURL, ok := ProviderEndpoint[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported OpenAI-compatible provider: %s", provider)
	}

	if model == "" {
		if provider != ProviderGroq {
			return nil, fmt.Errorf("no default model for provider: %s", provider)
		}
		model = DefaultGroqModel
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &openaiTranslator{
		client:   client,
		model:    model,
		provider: provider,
	}, nil
}

// Translate renders English text into the target language.
func (t *openaiTranslator) Translate(ctx context.Context, text string, target i18n.Language) (string, error) {
	if t == nil {
		return "", errors.New("translator is nil")
	}
	return t.complete(ctx, ResponsePrompt(text, target), target)
}

// TranslateRaw sends an arbitrary prompt and returns the trimmed reply.
func (t *openaiTranslator) TranslateRaw(ctx context.Context, prompt string) (string, error) {
	if t == nil {
		return "", errors.New("translator is nil")
	}
	return t.complete(ctx, prompt, "")
}

func (t *openaiTranslator) complete(ctx context.Context, prompt string, target i18n.Language) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.2), // Low temperature for faithful translation
		MaxTokens:   openai.Int(1000),
	}

	start := time.Now()
	resp, err := t.client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "translation API call failed",
			"provider", t.provider,
			"model", t.model,
			"target_language", target,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", errors.New("empty response from model")
	}

	if resp.Usage.TotalTokens > 0 {
		slog.DebugContext(ctx, "translation completed",
			"provider", t.provider,
			"model", t.model,
			"target_language", target,
			"input_tokens", resp.Usage.PromptTokens,
			"output_tokens", resp.Usage.CompletionTokens,
			"duration_ms", duration.Milliseconds())
	}

	return translated, nil
}

// Provider returns the provider type for this translator.
func (t *openaiTranslator) Provider() Provider {
	if t == nil {
		return ""
	}
	return t.provider
}

// Close releases resources.
// Safe to call on nil receiver.
func (t *openaiTranslator) Close() error {
	if t == nil {
		return nil
	}
	// openai-go client doesn't require cleanup
	return nil
}
