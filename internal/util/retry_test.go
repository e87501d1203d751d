package util

import (
	"context"
	"errors"
	"testing"
)

func TestRetryWithContext(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		got, err := RetryWithContext(context.Background(), 3, func(ctx context.Context) (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("RetryWithContext() error = %v", err)
		}
		if got != 42 {
			t.Errorf("RetryWithContext() = %d, want 42", got)
		}
		if calls != 1 {
			t.Errorf("fn called %d times, want 1", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		got, err := RetryWithContext(context.Background(), 3, func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("RetryWithContext() error = %v", err)
		}
		if got != "ok" {
			t.Errorf("RetryWithContext() = %q, want %q", got, "ok")
		}
		if calls != 3 {
			t.Errorf("fn called %d times, want 3", calls)
		}
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		wantErr := errors.New("still broken")
		calls := 0
		_, err := RetryWithContext(context.Background(), 2, func(ctx context.Context) (int, error) {
			calls++
			return 0, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("RetryWithContext() error = %v, want %v", err, wantErr)
		}
		if calls != 2 {
			t.Errorf("fn called %d times, want 2", calls)
		}
	})

	t.Run("does not retry after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		_, err := RetryWithContext(ctx, 5, func(ctx context.Context) (int, error) {
			calls++
			cancel()
			return 0, context.Canceled
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RetryWithContext() error = %v, want context.Canceled", err)
		}
		if calls != 1 {
			t.Errorf("fn called %d times, want 1", calls)
		}
	})

	t.Run("maxTries below one defaults to one", func(t *testing.T) {
		calls := 0
		_, err := RetryWithContext(context.Background(), 0, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("nope")
		})
		if err == nil {
			t.Fatal("RetryWithContext() expected error")
		}
		if calls != 1 {
			t.Errorf("fn called %d times, want 1", calls)
		}
	})
}
