package translate

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	initial := 100 * time.Millisecond
	max := time.Second

	if d := CalculateBackoff(0, initial, max); d != 0 {
		t.Errorf("attempt 0 delay = %v, want 0", d)
	}

	// Full Jitter: delay is random in [0, cap), so only bounds are checkable.
	for attempt := 1; attempt <= 5; attempt++ {
		d := CalculateBackoff(attempt, initial, max)
		if d < 0 || d > max {
			t.Errorf("attempt %d delay = %v out of [0, %v]", attempt, d, max)
		}
	}
}

func TestSleep_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSleep_ZeroDuration(t *testing.T) {
	t.Parallel()

	if err := Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0) = %v", err)
	}
}

func TestWithRetry_SuccessFirstAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	err := WithRetry(context.Background(), fastRetry(), nil, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetry_TransientThenSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	retries := 0
	err := WithRetry(context.Background(), fastRetry(),
		func(attempt int, err error) { retries++ },
		func() error {
			calls++
			if calls == 1 {
				return errors.New("rate limit exceeded")
			}
			return nil
		})
	if err != nil {
		t.Errorf("err = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if retries != 1 {
		t.Errorf("retries = %d, want 1", retries)
	}
}

func TestWithRetry_PermanentStopsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	permErr := errors.New("400 bad request")
	err := WithRetry(context.Background(), fastRetry(), nil, func() error {
		calls++
		return permErr
	})
	if !errors.Is(err, permErr) {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := WithRetry(context.Background(), fastRetry(), nil, func() error {
		calls++
		return errors.New("503 unavailable")
	})
	if err == nil {
		t.Error("Expected error after exhausting attempts")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestWithRetry_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, fastRetry(), nil, func() error {
		t.Error("fn should not run with cancelled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}
