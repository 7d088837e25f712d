// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrSessionNotFound indicates the chat session does not exist or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrVersionConflict indicates a session write lost an optimistic
	// concurrency race and should be retried with fresh state.
	ErrVersionConflict = errors.New("session version conflict")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSelection indicates the user's reply did not match any
	// offered option in the active flow step.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrTranslationFailed indicates every translation method failed and the
	// caller should fall back to English passthrough.
	ErrTranslationFailed = errors.New("translation failed")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrContextCanceled indicates context was canceled.
	ErrContextCanceled = errors.New("context canceled")

	// ErrUnknownIntent indicates no flow keyword matched the message.
	ErrUnknownIntent = errors.New("unknown intent")
)

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsVersionConflict reports whether err is or wraps ErrVersionConflict.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsRateLimitExceeded reports whether err is or wraps ErrRateLimitExceeded.
func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// TranslationError records a failed translation attempt with the provider
// and target language for logging and metrics.
type TranslationError struct {
	Provider string
	Language string
	Err      error
}

func (e *TranslationError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("translation error (provider=%s, language=%s): %v", e.Provider, e.Language, e.Err)
	}
	return fmt.Sprintf("translation error (language=%s): %v", e.Language, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// NewTranslationError creates a new translation error.
func NewTranslationError(provider, language string, err error) *TranslationError {
	return &TranslationError{
		Provider: provider,
		Language: language,
		Err:      err,
	}
}
