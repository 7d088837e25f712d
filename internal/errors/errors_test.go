package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      errors.Join(ErrNotFound, errors.New("additional context")),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrRateLimitExceeded,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "ErrRateLimitExceeded is recognized",
			err:      ErrRateLimitExceeded,
			checkFn:  IsRateLimitExceeded,
			expected: true,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      ErrInvalidInput,
			checkFn:  IsInvalidInput,
			expected: true,
		},
		{
			name:     "Wrapped ErrVersionConflict is recognized",
			err:      fmt.Errorf("update session: %w", ErrVersionConflict),
			checkFn:  IsVersionConflict,
			expected: true,
		},
		{
			name:     "ErrSessionNotFound is not a version conflict",
			err:      ErrSessionNotFound,
			checkFn:  IsVersionConflict,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.checkFn(tt.err)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("language", "unsupported code")

	if err.Field != "language" {
		t.Errorf("expected field 'language', got '%s'", err.Field)
	}

	if err.Message != "unsupported code" {
		t.Errorf("expected message 'unsupported code', got '%s'", err.Message)
	}

	expected := "validation failed on language: unsupported code"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestTranslationError(t *testing.T) {
	baseErr := errors.New("connection timeout")
	err := NewTranslationError("gemini", "hi", baseErr)

	if err.Provider != "gemini" {
		t.Errorf("expected provider 'gemini', got '%s'", err.Provider)
	}

	if err.Language != "hi" {
		t.Errorf("expected language 'hi', got '%s'", err.Language)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}

	// Without provider
	err2 := NewTranslationError("", "ta", baseErr)
	if err2.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
