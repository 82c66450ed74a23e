package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback while walking knowledge catalogs.
type Reporter interface {
	Start(label string, total int)
	Step(message string)
	Finish()
}

// NewReporter returns a TerminalReporter, or a PlainReporter when running
// under CI where cursor control sequences garble the log.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &PlainReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(label string, total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// PlainReporter prints line-by-line progress suitable for CI logs.
type PlainReporter struct {
	total   int
	current int
}

func (r *PlainReporter) Start(label string, total int) {
	r.total = total
	r.current = 0
	fmt.Fprintf(os.Stderr, "%s: %d entries\n", label, total)
}

func (r *PlainReporter) Step(message string) {
	r.current++
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", r.current, r.total, message)
}

func (r *PlainReporter) Finish() {
	fmt.Fprintln(os.Stderr, "done")
}
