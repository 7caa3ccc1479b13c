package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/foxseedlab/honyakun/internal/audio"
	"github.com/foxseedlab/honyakun/internal/config"
	"github.com/foxseedlab/honyakun/internal/display"
	"github.com/foxseedlab/honyakun/internal/history"
	"github.com/foxseedlab/honyakun/internal/transcriber"
	"github.com/foxseedlab/honyakun/internal/translator"
)

const (
	shutdownTimeout      = 5 * time.Second
	historyRecordTimeout = 10 * time.Second
)

type State int

const (
	StateIdle State = iota
	StateListening
	StateTranslating
	StateStopped
)

// utteranceJob is one finalized transcript waiting for translation.
// Index is assigned in final-event order; the single worker preserves it.
type utteranceJob struct {
	index uint64
	text  string
}

// Orchestrator wires capture, streaming transcription, translation, and the
// output sink into one session. Three units of concurrency: the
// capture-and-send loop, the event path driven by the transcriber adapter,
// and a single translation worker draining a bounded job queue in utterance
// order. Translation latency or failure never stalls capture or listening.
type Orchestrator struct {
	cfg         *config.Config
	capture     audio.Capture
	transcriber transcriber.Transcriber
	translator  translator.Translator
	display     display.Display
	history     history.Recorder
	retry       translator.RetryPolicy

	mu            sync.Mutex
	state         State
	nextUtterance uint64

	runCtx  context.Context
	jobs    chan utteranceJob
	fatalCh chan error
	wg      sync.WaitGroup
}

func NewOrchestrator(cfg *config.Config, capture audio.Capture, stt transcriber.Transcriber, mt translator.Translator, disp display.Display, rec history.Recorder) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		capture:     capture,
		transcriber: stt,
		translator:  mt,
		display:     disp,
		history:     rec,
		retry: translator.RetryPolicy{
			MaxAttempts:    cfg.TranslateRetryMaxAttempts,
			InitialBackoff: time.Duration(cfg.TranslateRetryInitialBackoffMS) * time.Millisecond,
			MaxBackoff:     time.Duration(cfg.TranslateRetryMaxBackoffMS) * time.Millisecond,
			Multiplier:     2.0,
		},
		jobs:    make(chan utteranceJob, cfg.TranslationQueueSize),
		fatalCh: make(chan error, 1),
	}
}

// Run drives one session from device claim to graceful shutdown. It returns
// nil on user-initiated stop (context cancellation) and the terminating
// error on device or fatal service failures.
func (o *Orchestrator) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.mu.Lock()
	o.runCtx = runCtx
	o.mu.Unlock()

	sessionID := fmt.Sprintf("session-%d", time.Now().UnixMilli())

	chunks, err := o.capture.Start(runCtx)
	if err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	slog.Info("capture started", "session_id", sessionID, "sample_rate", o.cfg.SampleRateHertz)

	receiver := &eventReceiver{orchestrator: o}
	writer, err := o.transcriber.StartStreaming(runCtx, sessionID, transcriber.SessionConfig{
		Language:        o.cfg.LanguageCode,
		SampleRateHertz: o.cfg.SampleRateHertz,
		Vocabulary: transcriber.VocabularyHint{
			Phrases: o.cfg.VocabularyPhrases,
			Boost:   float32(o.cfg.VocabularyBoost),
		},
	}, receiver)
	if err != nil {
		_ = o.capture.Stop()
		return fmt.Errorf("start transcription streaming: %w", err)
	}

	o.setState(StateListening)
	o.display.ShowStatus("リッスン中です。Ctrl+C で終了します。")

	o.wg.Add(2)
	go o.captureLoop(runCtx, sessionID, chunks, writer)
	go o.translateWorker(runCtx)

	var runErr error
	select {
	case <-runCtx.Done():
		slog.Info("session stopping", "session_id", sessionID, "reason", "stop signal")
	case err := <-o.fatalCh:
		runErr = err
		slog.Error("session stopping on fatal error", "session_id", sessionID, "error", err)
		cancel()
	}

	o.setState(StateStopped)
	if err := o.capture.Stop(); err != nil {
		slog.Warn("capture stop failed", "error", err, "session_id", sessionID)
	}
	if err := writer.Close(); err != nil {
		slog.Warn("stream close failed", "error", err, "session_id", sessionID)
	}
	waitBounded(&o.wg, shutdownTimeout)
	o.display.ShowStatus("終了しました。")
	slog.Info("session stopped", "session_id", sessionID)
	return runErr
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) captureLoop(ctx context.Context, sessionID string, chunks <-chan audio.Chunk, writer transcriber.StreamWriter) {
	defer o.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case chunk, ok := <-chunks:
			if !ok {
				slog.Info("capture channel closed", "session_id", sessionID)
				return
			}
			if err := writer.Write(chunk.PCM); err != nil {
				if ctx.Err() != nil {
					return
				}
				// The adapter already absorbed recoverable aborts; a Write
				// error here means the stream could not be reopened.
				o.reportFatal(fmt.Errorf("audio send failed at chunk %d: %w", chunk.Seq, err))
				return
			}
		}
	}
}

func (o *Orchestrator) translateWorker(ctx context.Context) {
	defer o.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-o.jobs:
			o.processJob(ctx, job)
		}
	}
}

func (o *Orchestrator) processJob(ctx context.Context, job utteranceJob) {
	o.setState(StateTranslating)
	defer o.setState(StateListening)

	result, err := translator.TranslateWithRetry(ctx, o.translator, job.text, o.cfg.TargetLanguage, o.retry)
	u := display.Utterance{Index: job.index, SourceText: job.text}
	switch {
	case err == nil:
		u.TranslatedText = result.TranslatedText
	case translator.IsFatal(err):
		u.TranslationFailed = true
		o.display.ShowUtterance(u)
		o.reportFatal(fmt.Errorf("translation service failure: %w", err))
		return
	case errors.Is(err, context.Canceled):
		// Shutdown mid-translation: still surface the source text.
		u.TranslationFailed = true
		o.display.ShowUtterance(u)
		return
	default:
		slog.Warn("translation unavailable after retries; emitting source only",
			"utterance", job.index, "error", err)
		u.TranslationFailed = true
	}
	o.display.ShowUtterance(u)

	if !u.TranslationFailed {
		o.wg.Add(1)
		go o.recordHistory(u)
	}
}

func (o *Orchestrator) recordHistory(u display.Utterance) {
	defer o.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), historyRecordTimeout)
	defer cancel()
	if err := o.history.Record(ctx, history.Entry{
		TimestampMS:    time.Now().UnixMilli(),
		SourceText:     u.SourceText,
		TranslatedText: u.TranslatedText,
	}); err != nil {
		slog.Error("failed to record history entry", "error", err, "utterance", u.Index)
	}
}

func (o *Orchestrator) handleInterim(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	o.display.ShowInterim(text)
}

func (o *Orchestrator) handleFinal(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	o.mu.Lock()
	job := utteranceJob{index: o.nextUtterance, text: text}
	o.nextUtterance++
	ctx := o.runCtx
	o.mu.Unlock()

	select {
	case o.jobs <- job:
		return
	default:
	}
	// Queue is full: each queued job drains within its retry budget, so a
	// blocking enqueue is bounded. Capture keeps flowing independently.
	slog.Warn("translation queue full; waiting for worker", "utterance", job.index)
	select {
	case o.jobs <- job:
	case <-ctx.Done():
	}
}

func (o *Orchestrator) reportFatal(err error) {
	select {
	case o.fatalCh <- err:
	default:
	}
}

type eventReceiver struct {
	orchestrator *Orchestrator
}

func (r *eventReceiver) OnEvent(ev transcriber.Event) {
	if ev.Final {
		r.orchestrator.handleFinal(ev.Text)
		return
	}
	r.orchestrator.handleInterim(ev.Text)
}

func (r *eventReceiver) OnError(err error) {
	o := r.orchestrator
	if errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "operation was cancelled") {
		slog.Info("transcriber stream canceled", "error", err)
		return
	}
	if transcriber.IsRecoverable(err) {
		// The adapter reopens the stream on the next write; finals delivered
		// before the error are already enqueued, so nothing is lost or
		// duplicated here.
		slog.Warn("recoverable transcriber stream error", "error", err)
		return
	}
	o.reportFatal(fmt.Errorf("transcription service failure: %w", err))
}

func waitBounded(wg *sync.WaitGroup, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		slog.Warn("shutdown timed out waiting for workers", "timeout", timeout)
	}
}
