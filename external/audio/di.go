package audio

import (
	"github.com/foxseedlab/honyakun/internal/audio"
	"github.com/foxseedlab/honyakun/internal/config"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (audio.Capture, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewMicrophoneCapture(c.SampleRateHertz, c.FrameSize), nil
	})
}
