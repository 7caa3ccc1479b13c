package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/honyakun/internal/config"
)

type envConfig struct {
	Env string `env:"ENV" envDefault:"production"`

	LanguageCode    string `env:"LANGUAGE_CODE"`
	TargetLanguage  string `env:"TARGET_LANGUAGE"`
	SampleRateHertz int    `env:"SAMPLE_RATE_HERTZ" envDefault:"16000"`
	FrameSize       int    `env:"FRAME_SIZE" envDefault:"0"`

	TranslateRetryMaxAttempts      int `env:"TRANSLATE_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	TranslateRetryInitialBackoffMS int `env:"TRANSLATE_RETRY_INITIAL_BACKOFF_MS" envDefault:"200"`
	TranslateRetryMaxBackoffMS     int `env:"TRANSLATE_RETRY_MAX_BACKOFF_MS" envDefault:"3000"`
	TranslationQueueSize           int `env:"TRANSLATION_QUEUE_SIZE" envDefault:"16"`

	VocabularyPhrases string  `env:"VOCABULARY_PHRASES"`
	VocabularyBoost   float64 `env:"VOCABULARY_BOOST" envDefault:"15"`

	GoogleCloudProjectID       string `env:"GOOGLE_CLOUD_PROJECT_ID"`
	GoogleCloudCredentialsJSON string `env:"GOOGLE_CLOUD_CREDENTIALS_JSON"`
	GoogleCloudSpeechLocation  string `env:"GOOGLE_CLOUD_SPEECH_LOCATION" envDefault:"global"`
	GoogleCloudSpeechModel     string `env:"GOOGLE_CLOUD_SPEECH_MODEL" envDefault:"latest_long"`

	HistoryAPIURL string `env:"HISTORY_API_URL"`
	HistoryAPIKey string `env:"HISTORY_API_KEY"`

	DatabaseURL      string `env:"DATABASE_URL"`
	ServerListenAddr string `env:"SERVER_LISTEN_ADDR" envDefault:":8080"`
	ServerAPIKey     string `env:"SERVER_API_KEY"`
}

// Load parses the shared environment into a Config. Required-ness is per
// command, so validation is left to ValidateRealtime / ValidateServer.
func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid: %w", err)
	}

	frameSize := raw.FrameSize
	if frameSize == 0 {
		// 100ms of audio at the configured sample rate.
		frameSize = raw.SampleRateHertz / 10
	}

	return &internalconfig.Config{
		Env:                            raw.Env,
		LanguageCode:                   raw.LanguageCode,
		TargetLanguage:                 raw.TargetLanguage,
		SampleRateHertz:                raw.SampleRateHertz,
		FrameSize:                      frameSize,
		TranslateRetryMaxAttempts:      raw.TranslateRetryMaxAttempts,
		TranslateRetryInitialBackoffMS: raw.TranslateRetryInitialBackoffMS,
		TranslateRetryMaxBackoffMS:     raw.TranslateRetryMaxBackoffMS,
		TranslationQueueSize:           raw.TranslationQueueSize,
		VocabularyPhrases:              splitPhrases(raw.VocabularyPhrases),
		VocabularyBoost:                raw.VocabularyBoost,
		GoogleCloudProjectID:           raw.GoogleCloudProjectID,
		GoogleCloudCredentialsJSON:     raw.GoogleCloudCredentialsJSON,
		GoogleCloudSpeechLocation:      raw.GoogleCloudSpeechLocation,
		GoogleCloudSpeechModel:         raw.GoogleCloudSpeechModel,
		HistoryAPIURL:                  raw.HistoryAPIURL,
		HistoryAPIKey:                  raw.HistoryAPIKey,
		DatabaseURL:                    raw.DatabaseURL,
		ServerListenAddr:               raw.ServerListenAddr,
		ServerAPIKey:                   raw.ServerAPIKey,
	}, nil
}

func splitPhrases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		phrases = append(phrases, p)
	}
	return phrases
}
