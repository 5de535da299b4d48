// Package lipgloss styles diagnostics on stderr using the Lipgloss styling
// library.
package lipgloss

import (
	"fmt"
	"io"

	lipglosslib "github.com/charmbracelet/lipgloss"
)

// Reporter writes error and warning messages with a colored prefix.
type Reporter struct {
	w      io.Writer
	errTag lipglosslib.Style
	warn   lipglosslib.Style
}

// NewReporter creates a reporter writing to w.
// If renderer is nil, a renderer for w is created.
func NewReporter(w io.Writer, renderer *lipglosslib.Renderer) *Reporter {
	if renderer == nil {
		renderer = lipglosslib.NewRenderer(w)
	}
	return &Reporter{
		w:      w,
		errTag: renderer.NewStyle().Bold(true).Foreground(lipglosslib.Color("1")),
		warn:   renderer.NewStyle().Bold(true).Foreground(lipglosslib.Color("3")),
	}
}

// Error reports err as "[chunkview error]: <err>".
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.w, "%s: %v\n", r.errTag.Render("[chunkview error]"), err)
}

// Warn reports a problem that did not stop the run.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.w, "%s: %s\n", r.warn.Render("[chunkview warning]"), fmt.Sprintf(format, args...))
}
