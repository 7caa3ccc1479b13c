package history

import "context"

// Entry is one translated utterance as stored by the history server.
// TimestampMS is the wall-clock emission time in milliseconds.
type Entry struct {
	TimestampMS    int64  `json:"timestamp"`
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
}

// Recorder appends one entry to the translation history. Implementations
// must be safe to call concurrently; failures are reported, never retried
// at this layer.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}
