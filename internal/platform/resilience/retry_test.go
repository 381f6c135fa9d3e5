package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	transient := errors.New("connection reset")
	attempts := 0
	var waits []time.Duration

	got, err := Retry(context.Background(), []time.Duration{time.Millisecond, 2 * time.Millisecond}, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", transient
		}
		return "ok", nil
	}, func(_ error, wait time.Duration) {
		waits = append(waits, wait)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected result: %q", got)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if len(waits) != 2 || waits[0] != time.Millisecond || waits[1] != 2*time.Millisecond {
		t.Fatalf("unexpected wait schedule: %v", waits)
	}
}

func TestRetry_GivesUpAfterSchedule(t *testing.T) {
	t.Parallel()

	transient := errors.New("connection reset")
	attempts := 0

	_, err := Retry(context.Background(), []time.Duration{time.Millisecond}, func() (int, error) {
		attempts++
		return 0, transient
	}, nil)
	if !errors.Is(err, transient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRetry_PermanentStopsImmediately(t *testing.T) {
	t.Parallel()

	upstream := errors.New("provider status=404")
	attempts := 0

	_, err := Retry(context.Background(), DefaultRetryBackoffs(), func() (int, error) {
		attempts++
		return 0, Permanent(upstream)
	}, nil)
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}

func TestRetry_NoBackoffsMeansSingleAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := Retry(context.Background(), nil, func() (int, error) {
		attempts++
		return 0, errors.New("boom")
	}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}
