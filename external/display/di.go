package display

import (
	"os"

	"github.com/foxseedlab/honyakun/internal/display"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (display.Display, error) {
		return NewConsoleDisplay(os.Stdout), nil
	})
}
