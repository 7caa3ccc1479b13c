package session

import (
	"github.com/foxseedlab/honyakun/internal/audio"
	"github.com/foxseedlab/honyakun/internal/config"
	"github.com/foxseedlab/honyakun/internal/display"
	"github.com/foxseedlab/honyakun/internal/history"
	"github.com/foxseedlab/honyakun/internal/transcriber"
	"github.com/foxseedlab/honyakun/internal/translator"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Orchestrator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		capture := do.MustInvoke[audio.Capture](i)
		stt := do.MustInvoke[transcriber.Transcriber](i)
		mt := do.MustInvoke[translator.Translator](i)
		disp := do.MustInvoke[display.Display](i)
		rec := do.MustInvoke[history.Recorder](i)
		return NewOrchestrator(cfg, capture, stt, mt, disp, rec), nil
	})
}
