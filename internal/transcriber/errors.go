package transcriber

import (
	"io"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsRecoverable reports whether a stream error is transient and the session
// can be reopened. The recognizer aborts long-lived streams on purpose (max
// stream duration, idle timeout), and transport-level unavailability comes
// and goes; neither means the session is broken.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if err == io.EOF || strings.Contains(strings.ToLower(err.Error()), "eof") {
		return true
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	case codes.Aborted:
		msg := strings.ToLower(st.Message())
		return strings.Contains(msg, "max duration") ||
			strings.Contains(msg, "stream timed out")
	default:
		return false
	}
}

// IsFatal reports whether a service error terminates the session: bad
// credentials or an exhausted quota will not resolve by retrying.
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
