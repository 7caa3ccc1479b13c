package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type scriptedTranslator struct {
	calls   int
	outcome func(call int) (Translation, error)
}

func (s *scriptedTranslator) Translate(_ context.Context, text, target string) (Translation, error) {
	s.calls++
	result, err := s.outcome(s.calls)
	if err != nil {
		return Translation{}, err
	}
	result.SourceText = text
	result.TargetLanguage = target
	return result, nil
}

func fastPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    maxAttempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestTranslateWithRetry_SucceedsFirstAttempt(t *testing.T) {
	tr := &scriptedTranslator{outcome: func(int) (Translation, error) {
		return Translation{TranslatedText: "こんにちは世界"}, nil
	}}

	result, err := TranslateWithRetry(context.Background(), tr, "hello world", "ja", fastPolicy(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "こんにちは世界" {
		t.Fatalf("unexpected translation: %q", result.TranslatedText)
	}
	if tr.calls != 1 {
		t.Fatalf("expected 1 call, got %d", tr.calls)
	}
}

func TestTranslateWithRetry_FailsTwiceThenSucceeds(t *testing.T) {
	tr := &scriptedTranslator{outcome: func(call int) (Translation, error) {
		if call <= 2 {
			return Translation{}, status.Error(codes.Unavailable, "transport is closing")
		}
		return Translation{TranslatedText: "ok"}, nil
	}}

	result, err := TranslateWithRetry(context.Background(), tr, "hello", "ja", fastPolicy(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "ok" {
		t.Fatalf("unexpected translation: %q", result.TranslatedText)
	}
	if tr.calls != 3 {
		t.Fatalf("expected exactly 3 calls, got %d", tr.calls)
	}
}

func TestTranslateWithRetry_ExhaustsBudget(t *testing.T) {
	wantErr := status.Error(codes.Unavailable, "still down")
	tr := &scriptedTranslator{outcome: func(int) (Translation, error) {
		return Translation{}, wantErr
	}}

	_, err := TranslateWithRetry(context.Background(), tr, "hello", "ja", fastPolicy(2))
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if tr.calls != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", tr.calls)
	}
}

func TestTranslateWithRetry_FatalStopsImmediately(t *testing.T) {
	tr := &scriptedTranslator{outcome: func(int) (Translation, error) {
		return Translation{}, status.Error(codes.Unauthenticated, "invalid credentials")
	}}

	_, err := TranslateWithRetry(context.Background(), tr, "hello", "ja", fastPolicy(3))
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if tr.calls != 1 {
		t.Fatalf("expected 1 call for fatal error, got %d", tr.calls)
	}
}

func TestTranslateWithRetry_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := &scriptedTranslator{outcome: func(int) (Translation, error) {
		cancel()
		return Translation{}, status.Error(codes.Unavailable, "down")
	}}

	policy := RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: time.Minute,
		MaxBackoff:     time.Minute,
		Multiplier:     2.0,
	}
	start := time.Now()
	_, err := TranslateWithRetry(ctx, tr, "hello", "ja", policy)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("cancellation did not interrupt backoff")
	}
}

func TestIsRecoverable_Classification(t *testing.T) {
	if IsRecoverable(nil) {
		t.Fatal("nil must not be recoverable")
	}
	if IsRecoverable(context.Canceled) {
		t.Fatal("context.Canceled must not be recoverable")
	}
	if !IsRecoverable(errors.New("connection reset by peer")) {
		t.Fatal("plain transport error should be recoverable")
	}
	if IsRecoverable(status.Error(codes.ResourceExhausted, "quota exceeded")) {
		t.Fatal("quota error must not be recoverable")
	}
}
