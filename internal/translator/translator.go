package translator

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Translation is the result of translating one finalized transcript segment.
type Translation struct {
	SourceText     string
	TargetLanguage string
	TranslatedText string
}

// Translator performs a plain request/response translation call.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (Translation, error)
}

// IsFatal reports whether a translation error terminates the session
// (bad credentials, exhausted quota).
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// IsRecoverable reports whether a translation error is worth retrying.
// Anything that is not fatal counts: transport failures, timeouts, and
// server-side hiccups all tend to clear within the retry budget.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return !IsFatal(err)
}
