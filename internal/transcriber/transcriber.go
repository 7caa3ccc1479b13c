package transcriber

import "context"

// Event is one recognition result for the currently open utterance.
// A non-final event is transient and overwrites the previous partial text;
// a final event closes the utterance.
type Event struct {
	Text      string
	Final     bool
	Stability float32
}

// VocabularyHint biases recognition toward domain terms. Immutable for the
// lifetime of a streaming session.
type VocabularyHint struct {
	Phrases []string
	Boost   float32
}

type SessionConfig struct {
	Language        string
	SampleRateHertz int
	Vocabulary      VocabularyHint
}

type StreamWriter interface {
	Write(pcm []byte) error
	Close() error
}

type EventReceiver interface {
	OnEvent(ev Event)
	OnError(err error)
}

// Transcriber opens a bidirectional streaming session against the remote
// recognizer. Events arrive on the receiver in utterance order: zero or more
// interim events, then exactly one final event per utterance. The stream
// itself is not restartable; implementations reopen a fresh stream on
// recoverable transport errors without losing the chunk being written.
type Transcriber interface {
	StartStreaming(ctx context.Context, sessionID string, cfg SessionConfig, receiver EventReceiver) (StreamWriter, error)
}
