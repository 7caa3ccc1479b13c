package config

import "fmt"

type Config struct {
	Env string

	LanguageCode    string
	TargetLanguage  string
	SampleRateHertz int
	FrameSize       int

	TranslateRetryMaxAttempts      int
	TranslateRetryInitialBackoffMS int
	TranslateRetryMaxBackoffMS     int
	TranslationQueueSize           int

	VocabularyPhrases []string
	VocabularyBoost   float64

	GoogleCloudProjectID       string
	GoogleCloudCredentialsJSON string
	GoogleCloudSpeechLocation  string
	GoogleCloudSpeechModel     string

	HistoryAPIURL string
	HistoryAPIKey string

	DatabaseURL      string
	ServerListenAddr string
	ServerAPIKey     string
}

// ValidateRealtime checks the fields the realtime pipeline needs.
// The database is intentionally not required here; history recording goes
// over HTTP against cmd/server and is optional.
func (c *Config) ValidateRealtime() error {
	for _, req := range c.realtimeRequiredFields() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.SampleRateHertz <= 0 {
		return fmt.Errorf("SAMPLE_RATE_HERTZ must be positive, got %d", c.SampleRateHertz)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("FRAME_SIZE must be positive, got %d", c.FrameSize)
	}
	if c.TranslateRetryMaxAttempts <= 0 {
		return fmt.Errorf("TRANSLATE_RETRY_MAX_ATTEMPTS must be positive, got %d", c.TranslateRetryMaxAttempts)
	}
	if c.TranslationQueueSize <= 0 {
		return fmt.Errorf("TRANSLATION_QUEUE_SIZE must be positive, got %d", c.TranslationQueueSize)
	}
	if c.VocabularyBoost < 0 {
		return fmt.Errorf("VOCABULARY_BOOST must not be negative, got %v", c.VocabularyBoost)
	}
	return nil
}

// ValidateServer checks the fields the history web server needs.
func (c *Config) ValidateServer() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ServerListenAddr == "" {
		return fmt.Errorf("SERVER_LISTEN_ADDR is required")
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) realtimeRequiredFields() []requiredEnvField {
	return []requiredEnvField{
		{name: "LANGUAGE_CODE", value: c.LanguageCode},
		{name: "TARGET_LANGUAGE", value: c.TargetLanguage},
		{name: "GOOGLE_CLOUD_PROJECT_ID", value: c.GoogleCloudProjectID},
		{name: "GOOGLE_CLOUD_CREDENTIALS_JSON", value: c.GoogleCloudCredentialsJSON},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
