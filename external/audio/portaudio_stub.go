//go:build !portaudio

package audio

import (
	"context"
	"fmt"

	internalaudio "github.com/foxseedlab/honyakun/internal/audio"
)

type stubCapture struct{}

func NewMicrophoneCapture(_, _ int) internalaudio.Capture {
	return &stubCapture{}
}

func (c *stubCapture) Start(_ context.Context) (<-chan internalaudio.Chunk, error) {
	return nil, fmt.Errorf("%w: binary was built without the portaudio build tag", internalaudio.ErrDeviceUnavailable)
}

func (c *stubCapture) Stop() error { return nil }
