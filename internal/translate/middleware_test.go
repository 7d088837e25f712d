package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// mockTranslator is a test mock for the Translator interface
type mockTranslator struct {
	translateFunc func(ctx context.Context, text string, target i18n.Language) (string, error)
	rawFunc       func(ctx context.Context, prompt string) (string, error)
	calls         int
	closeCalled   bool
}

func (m *mockTranslator) Translate(ctx context.Context, text string, target i18n.Language) (string, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(ctx, text, target)
	}
	return "", errors.New("not implemented")
}

func (m *mockTranslator) TranslateRaw(ctx context.Context, prompt string) (string, error) {
	if m.rawFunc != nil {
		return m.rawFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

func (m *mockTranslator) Provider() Provider {
	return ProviderGemini
}

func (m *mockTranslator) Close() error {
	m.closeCalled = true
	return nil
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 2, InitialDelay: 1, MaxDelay: 1}
}

func TestResponse_EnglishPassthrough(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{}
	svc := NewService(mock)

	result := svc.Response(context.Background(), "Hello", i18n.English)

	if !result.Success {
		t.Error("English passthrough should succeed")
	}
	if result.Method != MethodPassthrough {
		t.Errorf("Method = %q, want passthrough", result.Method)
	}
	if result.Language != i18n.English {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if result.Text != "Hello" {
		t.Errorf("Text = %q", result.Text)
	}
	if mock.calls != 0 {
		t.Errorf("Provider should not be called for English, got %d calls", mock.calls)
	}
}

func TestResponse_AISuccess(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{
		translateFunc: func(_ context.Context, _ string, _ i18n.Language) (string, error) {
			return "नमस्ते, कृपया अपना कार्यक्रम चुनें", nil
		},
	}
	svc := NewService(mock)
	svc.retry = fastRetry()

	result := svc.Response(context.Background(), "Hello, please select your program", i18n.Hindi)

	if !result.Success {
		t.Fatal("Expected success")
	}
	if result.Method != MethodAI {
		t.Errorf("Method = %q, want ai", result.Method)
	}
	if result.Language != i18n.Hindi {
		t.Errorf("Language = %q, want hi", result.Language)
	}
}

func TestResponse_RetriesOnTransientError(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{}
	mock.translateFunc = func(_ context.Context, _ string, _ i18n.Language) (string, error) {
		if mock.calls == 1 {
			return "", errors.New("503 service temporarily unavailable")
		}
		return "सोमवार का समय सारिणी", nil
	}
	svc := NewService(mock)
	svc.retry = fastRetry()

	result := svc.Response(context.Background(), "Monday timetable", i18n.Hindi)

	if !result.Success || result.Method != MethodAI {
		t.Fatalf("Expected AI success after retry, got %+v", result)
	}
	if mock.calls != 2 {
		t.Errorf("calls = %d, want 2", mock.calls)
	}
}

func TestResponse_InvalidAIOutputFallsBackToGlossary(t *testing.T) {
	t.Parallel()
	// Provider echoes the English input, which fails validation for Hindi.
	mock := &mockTranslator{
		translateFunc: func(_ context.Context, text string, _ i18n.Language) (string, error) {
			return text, nil
		},
	}
	svc := NewService(mock)
	svc.retry = fastRetry()

	result := svc.Response(context.Background(), "Class Timetable for Monday", i18n.Hindi)

	if !result.Success {
		t.Fatalf("Glossary fallback should succeed, got %+v", result)
	}
	if result.Method != MethodGlossary {
		t.Errorf("Method = %q, want glossary", result.Method)
	}
	if !strings.Contains(result.Text, "सोमवार") {
		t.Errorf("Glossary output missing Hindi day name: %q", result.Text)
	}
	if mock.calls != 2 {
		t.Errorf("Invalid output should be retried once, got %d calls", mock.calls)
	}
}

func TestResponse_AllLayersFailReturnsEnglish(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{
		translateFunc: func(_ context.Context, _ string, _ i18n.Language) (string, error) {
			return "", errors.New("500 internal server error")
		},
	}
	svc := NewService(mock)
	svc.retry = fastRetry()

	// No glossary terms in the text, so the glossary output equals the
	// input and fails validation too.
	original := "Your request could not be processed right now."
	result := svc.Response(context.Background(), original, i18n.Tamil)

	if result.Success {
		t.Error("Expected Success=false when every layer fails")
	}
	if result.Method != MethodPassthrough {
		t.Errorf("Method = %q, want passthrough", result.Method)
	}
	if result.Language != i18n.English {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if result.Text != original {
		t.Errorf("Text = %q, want original English", result.Text)
	}
}

func TestResponse_NilProviderUsesGlossary(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)

	result := svc.Response(context.Background(), "Monday", i18n.Telugu)

	if !result.Success || result.Method != MethodGlossary {
		t.Fatalf("Expected glossary success without provider, got %+v", result)
	}
	if result.Text != "సోమవారం" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestResponse_PermanentErrorSkipsRetry(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{
		translateFunc: func(_ context.Context, _ string, _ i18n.Language) (string, error) {
			return "", errors.New("401 unauthorized: invalid api key")
		},
	}
	svc := NewService(mock)
	svc.retry = fastRetry()

	svc.Response(context.Background(), "Monday", i18n.Hindi)

	if mock.calls != 1 {
		t.Errorf("Permanent error should not be retried, got %d calls", mock.calls)
	}
}

func TestResponse_RecordsAttempts(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)
	var methods []Method
	var outcomes []bool
	svc.OnAttempt = func(m Method, ok bool) {
		methods = append(methods, m)
		outcomes = append(outcomes, ok)
	}

	svc.Response(context.Background(), "Monday", i18n.Hindi)

	// AI layer fails (no provider), glossary succeeds.
	if len(methods) != 2 || methods[0] != MethodAI || methods[1] != MethodGlossary {
		t.Errorf("methods = %v", methods)
	}
	if outcomes[0] || !outcomes[1] {
		t.Errorf("outcomes = %v", outcomes)
	}
}

func TestTexts_PreservesOrder(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)

	texts := []string{"Monday", "Tuesday", "Wednesday"}
	results := svc.Texts(context.Background(), texts, i18n.Hindi)

	if len(results) != 3 {
		t.Fatalf("len = %d", len(results))
	}
	want := []string{"सोमवार", "मंगलवार", "बुधवार"}
	for i, r := range results {
		if r.Text != want[i] {
			t.Errorf("results[%d].Text = %q, want %q", i, r.Text, want[i])
		}
	}
}

func TestTexts_Empty(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)

	results := svc.Texts(context.Background(), nil, i18n.Hindi)
	if len(results) != 0 {
		t.Errorf("Expected empty results, got %d", len(results))
	}
}

func TestInput_EnglishUnchanged(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{}
	svc := NewService(mock)

	got := svc.Input(context.Background(), "semester fees", i18n.English)
	if got != "semester fees" {
		t.Errorf("got %q", got)
	}
}

func TestInput_TranslatesViaRawPrompt(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{
		rawFunc: func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "to English") {
				t.Errorf("Prompt should target English: %q", prompt)
			}
			return "what are the semester fees", nil
		},
	}
	svc := NewService(mock)

	got := svc.Input(context.Background(), "सेमेस्टर फीस क्या है", i18n.Hindi)
	if got != "what are the semester fees" {
		t.Errorf("got %q", got)
	}
}

func TestInput_FailureKeepsOriginal(t *testing.T) {
	t.Parallel()
	mock := &mockTranslator{
		rawFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("timeout")
		},
	}
	svc := NewService(mock)

	original := "সেমিস্টার ফি"
	if got := svc.Input(context.Background(), original, i18n.Bengali); got != original {
		t.Errorf("got %q, want original", got)
	}
}
