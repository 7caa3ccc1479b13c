package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foxseedlab/honyakun/internal/repository"
)

type mockRepository struct {
	records []repository.Translation
	cleared bool
}

func (m *mockRepository) InsertTranslation(_ context.Context, input repository.InsertTranslationInput) (*repository.Translation, error) {
	t := repository.Translation{
		ID:             "generated-id",
		RecordedAt:     input.RecordedAt,
		SourceText:     input.SourceText,
		TranslatedText: input.TranslatedText,
		CreatedAt:      time.Now(),
	}
	m.records = append(m.records, t)
	return &t, nil
}

func (m *mockRepository) ListTranslations(_ context.Context) ([]repository.Translation, error) {
	return m.records, nil
}

func (m *mockRepository) ClearTranslations(_ context.Context) error {
	m.cleared = true
	m.records = nil
	return nil
}

func TestList(t *testing.T) {
	repo := &mockRepository{records: []repository.Translation{
		{RecordedAt: time.UnixMilli(1700000000000), SourceText: "안녕하세요", TranslatedText: "こんにちは"},
	}}
	mux := NewHandler(repo, "").Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translations", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Translations) != 1 {
		t.Fatalf("expected 1 translation, got %d", len(resp.Translations))
	}
	got := resp.Translations[0]
	if got.TimestampMS != 1700000000000 || got.SourceText != "안녕하세요" || got.TranslatedText != "こんにちは" {
		t.Fatalf("unexpected translation: %+v", got)
	}
}

func TestCreate(t *testing.T) {
	repo := &mockRepository{}
	mux := NewHandler(repo, "secret").Routes()

	body := `{"timestamp":1700000000000,"source_text":"안녕","translated_text":"やあ"}`
	req := httptest.NewRequest(http.MethodPost, "/api/translations", strings.NewReader(body))
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.records))
	}
	stored := repo.records[0]
	if stored.RecordedAt.UnixMilli() != 1700000000000 || stored.SourceText != "안녕" || stored.TranslatedText != "やあ" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
}

func TestCreateRejectsInvalidAPIKey(t *testing.T) {
	repo := &mockRepository{}
	mux := NewHandler(repo, "secret").Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/translations", strings.NewReader(`{"source_text":"x"}`))
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(repo.records) != 0 {
		t.Fatal("record must not be stored on auth failure")
	}
}

func TestCreateAllowsAnyKeyWhenUnconfigured(t *testing.T) {
	repo := &mockRepository{}
	mux := NewHandler(repo, "").Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/translations", strings.NewReader(`{"source_text":"x"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCreateRejectsMissingSourceText(t *testing.T) {
	mux := NewHandler(&mockRepository{}, "").Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/translations", strings.NewReader(`{"translated_text":"x"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClear(t *testing.T) {
	repo := &mockRepository{records: []repository.Translation{{SourceText: "x"}}}
	mux := NewHandler(repo, "secret").Routes()

	req := httptest.NewRequest(http.MethodDelete, "/api/translations", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !repo.cleared || len(repo.records) != 0 {
		t.Fatal("expected repository to be cleared")
	}
}

func TestIndexRendersHistory(t *testing.T) {
	repo := &mockRepository{records: []repository.Translation{
		{RecordedAt: time.UnixMilli(1700000000000), SourceText: "안녕하세요", TranslatedText: "こんにちは"},
	}}
	mux := NewHandler(repo, "").Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	html := rec.Body.String()
	if !strings.Contains(html, "안녕하세요") || !strings.Contains(html, "こんにちは") {
		t.Fatalf("rendered page missing records: %s", html)
	}
}
