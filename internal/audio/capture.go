package audio

import (
	"context"
	"errors"
)

// ErrDeviceUnavailable is returned when the input device cannot be claimed.
// The condition is treated as persistent for the process lifetime, so callers
// stop the session instead of retrying.
var ErrDeviceUnavailable = errors.New("audio input device unavailable")

// Chunk is one frame of raw LINEAR16 PCM read from the input device.
// Seq is a monotonic position within the capture session.
type Chunk struct {
	PCM []byte
	Seq uint64
}

// Capture claims the platform-default input device and produces a continuous
// chunk stream until Stop is called or the context is canceled. Each chunk is
// consumed exactly once; the channel is closed when capture ends.
type Capture interface {
	Start(ctx context.Context) (<-chan Chunk, error)
	Stop() error
}
