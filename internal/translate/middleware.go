// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file contains the response translation middleware: every outgoing
// message passes through it exactly once, so no English leaks into a
// non-English session unless the whole fallback chain fails.
package translate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/adityaraj161616/campus-chatbot-go/internal/glossary"
	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// RawTranslator is implemented by providers that accept a caller-built
// prompt, used for input translation and timetable entries.
type RawTranslator interface {
	TranslateRaw(ctx context.Context, prompt string) (string, error)
}

// Service is the translation middleware. A nil primary translator is valid
// and drops straight to the glossary layer.
type Service struct {
	primary Translator
	retry   RetryConfig

	// OnAttempt is an optional hook recording each fallback-chain outcome,
	// keyed by method. Wired to prometheus counters by the server.
	OnAttempt func(method Method, success bool)
}

// NewService creates the translation middleware around the primary translator.
func NewService(primary Translator) *Service {
	return &Service{
		primary: primary,
		retry:   DefaultRetryConfig(),
	}
}

// Response translates an outgoing message into the session language.
//
// The chain runs AI → glossary → passthrough. Each produced text is gated by
// the length and identity heuristics in glossary.IsValidTranslation; an
// invalid AI translation is treated the same as a provider error. When every
// layer fails the English text is returned with Success=false so the caller
// can surface the degradation.
func (s *Service) Response(ctx context.Context, text string, target i18n.Language) Result {
	if target == i18n.English || text == "" {
		return Result{Text: text, Method: MethodPassthrough, Language: i18n.English, Success: true}
	}

	if translated, ok := s.tryAI(ctx, text, target); ok {
		s.record(MethodAI, true)
		return Result{Text: translated, Method: MethodAI, Language: target, Success: true}
	}
	s.record(MethodAI, false)

	if translated := glossary.Translate(text, target); glossary.IsValidTranslation(text, translated, target) {
		s.record(MethodGlossary, true)
		return Result{Text: translated, Method: MethodGlossary, Language: target, Success: true}
	}
	s.record(MethodGlossary, false)

	slog.WarnContext(ctx, "all translation methods failed, returning English",
		"target_language", target,
		"text_length", len(text))
	s.record(MethodPassthrough, false)
	return Result{Text: text, Method: MethodPassthrough, Language: i18n.English, Success: false}
}

// Glossary translates without touching the AI provider. Used when a session
// has exhausted its AI translation quota.
func (s *Service) Glossary(ctx context.Context, text string, target i18n.Language) Result {
	if target == i18n.English || text == "" {
		return Result{Text: text, Method: MethodPassthrough, Language: i18n.English, Success: true}
	}

	if translated := glossary.Translate(text, target); glossary.IsValidTranslation(text, translated, target) {
		s.record(MethodGlossary, true)
		return Result{Text: translated, Method: MethodGlossary, Language: target, Success: true}
	}
	s.record(MethodGlossary, false)

	slog.DebugContext(ctx, "glossary translation insufficient, returning English",
		"target_language", target)
	s.record(MethodPassthrough, false)
	return Result{Text: text, Method: MethodPassthrough, Language: i18n.English, Success: false}
}

// tryAI runs the primary translator with bounded retry and validates the
// output. Returns false when the provider is absent, errors out, or keeps
// producing invalid text.
func (s *Service) tryAI(ctx context.Context, text string, target i18n.Language) (string, bool) {
	if s.primary == nil {
		return "", false
	}

	var translated string
	err := WithRetry(ctx, s.retry,
		func(attempt int, err error) {
			slog.DebugContext(ctx, "retrying translation",
				"provider", s.primary.Provider(),
				"attempt", attempt,
				"error", err)
		},
		func() error {
			out, err := s.primary.Translate(ctx, text, target)
			if err != nil {
				return err
			}
			if !glossary.IsValidTranslation(text, out, target) {
				return errInvalidTranslation
			}
			translated = out
			return nil
		})
	if err != nil {
		slog.WarnContext(ctx, "AI translation failed, falling back to glossary",
			"provider", s.primary.Provider(),
			"target_language", target,
			"error", err)
		return "", false
	}
	return translated, true
}

// Texts translates a batch of short texts concurrently, one Result per input
// in the same order. Used for option labels so a slow provider call on one
// label does not serialize the rest.
func (s *Service) Texts(ctx context.Context, texts []string, target i18n.Language) []Result {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return results
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, text := range texts {
		g.Go(func() error {
			results[i] = s.Response(ctx, text, target)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, degraded results carry Success=false
	return results
}

// Input translates a user query to English, best effort. The multilingual
// keyword tables cover common phrasings directly, so this only widens intent
// detection; on any failure the original text comes back unchanged.
func (s *Service) Input(ctx context.Context, text string, source i18n.Language) string {
	if source == i18n.English || text == "" {
		return text
	}
	raw, ok := s.primary.(RawTranslator)
	if !ok || s.primary == nil {
		return text
	}

	translated, err := raw.TranslateRaw(ctx, InputPrompt(text, source))
	if err != nil {
		slog.DebugContext(ctx, "input translation failed, using original text",
			"source_language", source,
			"error", err)
		return text
	}
	if translated == "" {
		return text
	}
	return translated
}

func (s *Service) record(method Method, success bool) {
	if s.OnAttempt != nil {
		s.OnAttempt(method, success)
	}
}

// errInvalidTranslation marks an AI reply the validation heuristics rejected.
// It is transient from the retry loop's point of view.
type invalidTranslationError struct{}

func (invalidTranslationError) Error() string { return "translation failed validation: output unavailable" }

var errInvalidTranslation = invalidTranslationError{}
