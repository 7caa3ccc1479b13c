package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxseedlab/honyakun/internal/history"
)

func TestRecord_EmptyURL(t *testing.T) {
	r := NewHTTPRecorder("", "")
	if err := r.Record(context.Background(), history.Entry{SourceText: "hello"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRecord_Success(t *testing.T) {
	var gotAPIKey string
	var gotEntry history.Entry

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		gotAPIKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotEntry); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewHTTPRecorder(server.URL, "secret")
	entry := history.Entry{
		TimestampMS:    1234,
		SourceText:     "hello world",
		TranslatedText: "こんにちは世界",
	}
	if err := r.Record(context.Background(), entry); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotAPIKey != "secret" {
		t.Fatalf("unexpected api key: %q", gotAPIKey)
	}
	if gotEntry != entry {
		t.Fatalf("unexpected entry: %+v", gotEntry)
	}
}

func TestRecord_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	r := NewHTTPRecorder(server.URL, "")
	if err := r.Record(context.Background(), history.Entry{SourceText: "hello"}); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
