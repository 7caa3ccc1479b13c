package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/foxseedlab/honyakun/internal/history"
)

type HTTPRecorder struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewHTTPRecorder posts entries to the history web server. An empty URL
// disables recording entirely.
func NewHTTPRecorder(apiURL, apiKey string) history.Recorder {
	return &HTTPRecorder{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (r *HTTPRecorder) Record(ctx context.Context, entry history.Entry) error {
	if r.apiURL == "" {
		return nil
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		return fmt.Errorf("history server returned status %d", resp.StatusCode)
	}
	return nil
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
