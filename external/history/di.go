package history

import (
	"github.com/foxseedlab/honyakun/internal/config"
	"github.com/foxseedlab/honyakun/internal/history"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (history.Recorder, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewHTTPRecorder(c.HistoryAPIURL, c.HistoryAPIKey), nil
	})
}
