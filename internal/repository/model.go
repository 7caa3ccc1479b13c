package repository

import "time"

// Translation is one stored history record. RecordedAt is the moment the
// utterance was spoken on the realtime side; CreatedAt is when the row was
// written.
type Translation struct {
	ID             string
	RecordedAt     time.Time
	SourceText     string
	TranslatedText string
	CreatedAt      time.Time
}
