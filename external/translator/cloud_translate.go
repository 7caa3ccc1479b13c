package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/auth/credentials"
	translate "cloud.google.com/go/translate/apiv3"
	translatepb "cloud.google.com/go/translate/apiv3/translatepb"
	internaltranslator "github.com/foxseedlab/honyakun/internal/translator"
	"google.golang.org/api/option"
)

type CloudTranslateConfig struct {
	ProjectID       string
	CredentialsJSON string
}

type CloudTranslator struct {
	projectID string
	client    *translate.TranslationClient
}

// NewCloudTranslator builds a Cloud Translation client with explicitly
// constructed service-account credentials, mirroring the speech adapter.
func NewCloudTranslator(ctx context.Context, cfg CloudTranslateConfig) (*CloudTranslator, error) {
	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(cfg.CredentialsJSON),
		Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
	})
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}
	client, err := translate.NewTranslationClient(ctx, option.WithAuthCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create translation client: %w", err)
	}
	return &CloudTranslator{
		projectID: cfg.ProjectID,
		client:    client,
	}, nil
}

func (t *CloudTranslator) Translate(ctx context.Context, text, targetLanguage string) (internaltranslator.Translation, error) {
	resp, err := t.client.TranslateText(ctx, &translatepb.TranslateTextRequest{
		Parent:             fmt.Sprintf("projects/%s/locations/global", t.projectID),
		Contents:           []string{text},
		TargetLanguageCode: targetLanguage,
		MimeType:           "text/plain",
	})
	if err != nil {
		return internaltranslator.Translation{}, err
	}
	translations := resp.GetTranslations()
	if len(translations) == 0 {
		return internaltranslator.Translation{}, fmt.Errorf("translation response contained no translations")
	}
	translated := strings.TrimSpace(translations[0].GetTranslatedText())
	slog.Debug("translated segment", "source_chars", len(text), "translated_chars", len(translated))
	return internaltranslator.Translation{
		SourceText:     text,
		TargetLanguage: targetLanguage,
		TranslatedText: translated,
	}, nil
}

func (t *CloudTranslator) Close() error {
	return t.client.Close()
}
