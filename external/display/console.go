package display

import (
	"fmt"
	"io"
	"sync"

	internaldisplay "github.com/foxseedlab/honyakun/internal/display"
)

const (
	ansiRed    = "\033[0;31m"
	ansiGreen  = "\033[0;32m"
	ansiYellow = "\033[0;33m"
	ansiReset  = "\033[0m"
	clearLine  = "\r\033[K"

	translationUnavailableMarker = "（翻訳できませんでした）"
)

type ConsoleDisplay struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleDisplay(w io.Writer) internaldisplay.Display {
	return &ConsoleDisplay{w: w}
}

// ShowInterim rewrites the current line so the next interim or final result
// replaces it instead of appending.
func (d *ConsoleDisplay) ShowInterim(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "%s%s%s%s", clearLine, ansiRed, text, ansiReset)
}

func (d *ConsoleDisplay) ShowUtterance(u internaldisplay.Utterance) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "%s%s%d: %s%s\n", clearLine, ansiGreen, u.Index, u.SourceText, ansiReset)
	if u.TranslationFailed {
		fmt.Fprintf(d.w, "%s%d: %s%s\n", ansiRed, u.Index, translationUnavailableMarker, ansiReset)
		return
	}
	fmt.Fprintf(d.w, "%s%d: %s%s\n", ansiYellow, u.Index, u.TranslatedText, ansiReset)
}

func (d *ConsoleDisplay) ShowStatus(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "%s%s%s%s\n", clearLine, ansiYellow, msg, ansiReset)
}
