package translator

import (
	"context"
	"log/slog"
	"time"
)

// RetryPolicy bounds the translate retry loop. The policy is an explicit
// value so the loop is testable without any I/O behind it.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     3 * time.Second,
		Multiplier:     2.0,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.InitialBackoff <= 0 {
		p.InitialBackoff = 200 * time.Millisecond
	}
	if p.MaxBackoff <= 0 {
		p.MaxBackoff = 3 * time.Second
	}
	if p.Multiplier < 1 {
		p.Multiplier = 2.0
	}
	return p
}

// TranslateWithRetry runs the translate call up to MaxAttempts times with
// exponential backoff between recoverable failures. Fatal errors and context
// cancellation return immediately; an exhausted budget returns the last
// recoverable error.
func TranslateWithRetry(ctx context.Context, tr Translator, text, targetLanguage string, policy RetryPolicy) (Translation, error) {
	p := policy.normalized()
	backoff := p.InitialBackoff
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := tr.Translate(ctx, text, targetLanguage)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !IsRecoverable(err) {
			return Translation{}, err
		}
		if attempt == p.MaxAttempts {
			break
		}
		slog.Warn("translate attempt failed; backing off",
			"attempt", attempt,
			"max_attempts", p.MaxAttempts,
			"backoff", backoff,
			"error", err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return Translation{}, ctx.Err()
		}
		backoff = time.Duration(float64(backoff) * p.Multiplier)
		if backoff > p.MaxBackoff {
			backoff = p.MaxBackoff
		}
	}
	return Translation{}, lastErr
}
