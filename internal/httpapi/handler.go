package httpapi

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/foxseedlab/honyakun/internal/repository"
)

const apiKeyHeader = "X-API-Key"

// Handler serves the translation history: an HTML index page and a small
// JSON API the realtime pipeline posts into.
type Handler struct {
	repo   repository.Repository
	apiKey string
}

func NewHandler(repo repository.Repository, apiKey string) *Handler {
	return &Handler{repo: repo, apiKey: apiKey}
}

// Routes registers all endpoints on a fresh mux. Mutating endpoints require
// the API key when one is configured; reads are open.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /api/translations", h.list)
	mux.HandleFunc("POST /api/translations", h.requireAPIKey(h.create))
	mux.HandleFunc("DELETE /api/translations", h.requireAPIKey(h.clear))
	return mux
}

func (h *Handler) requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey != "" && r.Header.Get(apiKeyHeader) != h.apiKey {
			writeError(w, http.StatusForbidden, "invalid API key")
			return
		}
		next(w, r)
	}
}

type translationJSON struct {
	TimestampMS    int64  `json:"timestamp"`
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
}

type listResponse struct {
	Translations []translationJSON `json:"translations"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.ListTranslations(r.Context())
	if err != nil {
		slog.Error("failed to list translations", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list translations")
		return
	}
	resp := listResponse{Translations: make([]translationJSON, 0, len(records))}
	for _, t := range records {
		resp.Translations = append(resp.Translations, translationJSON{
			TimestampMS:    t.RecordedAt.UnixMilli(),
			SourceText:     t.SourceText,
			TranslatedText: t.TranslatedText,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var body translationJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.SourceText == "" {
		writeError(w, http.StatusBadRequest, "source_text is required")
		return
	}
	recordedAt := time.UnixMilli(body.TimestampMS)
	if body.TimestampMS == 0 {
		recordedAt = time.Now()
	}
	if _, err := h.repo.InsertTranslation(r.Context(), repository.InsertTranslationInput{
		RecordedAt:     recordedAt,
		SourceText:     body.SourceText,
		TranslatedText: body.TranslatedText,
	}); err != nil {
		slog.Error("failed to insert translation", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save translation")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "success"})
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.ClearTranslations(r.Context()); err != nil {
		slog.Error("failed to clear translations", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear translations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>翻訳履歴</title>
<style>
body { font-family: sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
.translation { background: white; padding: 15px; margin: 10px 0; border-radius: 5px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
.timestamp { color: #666; font-size: 0.9em; }
.texts { display: flex; gap: 20px; margin-top: 5px; }
.source { flex: 1; border-right: 1px solid #ddd; padding-right: 10px; }
.translated { flex: 1; }
</style>
</head>
<body>
<h1>翻訳履歴</h1>
{{range .}}
<div class="translation">
<div class="timestamp">{{.RecordedAt.Format "2006-01-02 15:04:05"}}</div>
<div class="texts">
<div class="source">{{.SourceText}}</div>
<div class="translated">{{.TranslatedText}}</div>
</div>
</div>
{{else}}
<p>まだ履歴がありません。</p>
{{end}}
</body>
</html>
`))

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.ListTranslations(r.Context())
	if err != nil {
		slog.Error("failed to render history page", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, records); err != nil {
		slog.Error("failed to execute index template", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
