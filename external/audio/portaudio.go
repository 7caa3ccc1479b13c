//go:build portaudio

package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	internalaudio "github.com/foxseedlab/honyakun/internal/audio"
	"github.com/gordonklaus/portaudio"
)

const captureChannelBuffer = 32

type MicrophoneCapture struct {
	sampleRate int
	frameSize  int

	mu      sync.Mutex
	stream  *portaudio.Stream
	cancel  context.CancelFunc
	started bool
}

func NewMicrophoneCapture(sampleRate, frameSize int) internalaudio.Capture {
	return &MicrophoneCapture{
		sampleRate: sampleRate,
		frameSize:  frameSize,
	}
}

func (c *MicrophoneCapture) Start(ctx context.Context) (<-chan internalaudio.Chunk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil, fmt.Errorf("capture already started")
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", internalaudio.ErrDeviceUnavailable, err)
	}

	frame := make([]int16, c.frameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(c.sampleRate), len(frame), frame)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", internalaudio.ErrDeviceUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", internalaudio.ErrDeviceUnavailable, err)
	}

	captureCtx, cancel := context.WithCancel(ctx)
	c.stream = stream
	c.cancel = cancel
	c.started = true
	slog.Info("microphone capture started", "sample_rate", c.sampleRate, "frame_size", c.frameSize)

	out := make(chan internalaudio.Chunk, captureChannelBuffer)
	go c.captureLoop(captureCtx, stream, frame, out)
	return out, nil
}

func (c *MicrophoneCapture) captureLoop(ctx context.Context, stream *portaudio.Stream, frame []int16, out chan<- internalaudio.Chunk) {
	defer close(out)
	var seq uint64
	for {
		if ctx.Err() != nil {
			return
		}
		if err := stream.Read(); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("microphone read failed", "error", err)
			return
		}
		pcm := make([]byte, len(frame)*2)
		for i, s := range frame {
			binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
		}
		select {
		case out <- internalaudio.Chunk{PCM: pcm, Seq: seq}:
			seq++
		case <-ctx.Done():
			return
		}
	}
}

func (c *MicrophoneCapture) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return nil
	}
	c.started = false
	c.cancel()
	if err := c.stream.Stop(); err != nil {
		_ = c.stream.Close()
		_ = portaudio.Terminate()
		return err
	}
	if err := c.stream.Close(); err != nil {
		_ = portaudio.Terminate()
		return err
	}
	return portaudio.Terminate()
}
