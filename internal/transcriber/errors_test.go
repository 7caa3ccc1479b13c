package transcriber

import (
	"errors"
	"io"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsRecoverable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"eof", io.EOF, true},
		{"unavailable", status.Error(codes.Unavailable, "transport is closing"), true},
		{"deadline", status.Error(codes.DeadlineExceeded, "deadline exceeded"), true},
		{"aborted max duration", status.Error(codes.Aborted, "Max duration of 5 minutes reached for stream"), true},
		{"aborted idle timeout", status.Error(codes.Aborted, "Stream timed out after receiving no more client requests"), true},
		{"aborted other", status.Error(codes.Aborted, "conflict"), false},
		{"unauthenticated", status.Error(codes.Unauthenticated, "invalid credentials"), false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := IsRecoverable(tc.err); got != tc.want {
			t.Errorf("%s: IsRecoverable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unauthenticated", status.Error(codes.Unauthenticated, "invalid credentials"), true},
		{"permission denied", status.Error(codes.PermissionDenied, "caller lacks permission"), true},
		{"quota", status.Error(codes.ResourceExhausted, "quota exceeded"), true},
		{"unavailable", status.Error(codes.Unavailable, "transport is closing"), false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := IsFatal(tc.err); got != tc.want {
			t.Errorf("%s: IsFatal = %v, want %v", tc.name, got, tc.want)
		}
	}
}
