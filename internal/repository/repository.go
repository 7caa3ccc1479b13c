package repository

import (
	"context"
	"time"
)

type InsertTranslationInput struct {
	RecordedAt     time.Time
	SourceText     string
	TranslatedText string
}

type Repository interface {
	InsertTranslation(ctx context.Context, input InsertTranslationInput) (*Translation, error)
	ListTranslations(ctx context.Context) ([]Translation, error)
	ClearTranslations(ctx context.Context) error
}
