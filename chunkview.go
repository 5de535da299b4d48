// Package chunkview provides domain types for printing highlighted excerpts
// of source files to a terminal.
package chunkview

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrTerminalTooNarrow is returned when the terminal width leaves no room for
// code after the line-number gutter.
var ErrTerminalTooNarrow = errors.New("terminal is too narrow to print code")

// Chunk is an inclusive range of 1-based line numbers to print.
type Chunk struct {
	Start int
	End   int
}

// Contains reports whether lnum lies within the chunk.
func (c Chunk) Contains(lnum int) bool {
	return c.Start <= lnum && lnum <= c.End
}

// File is a single source file together with the lines to print from it.
type File struct {
	Path        string  // Display label and syntax detection hint
	Contents    []byte  // Raw bytes, decoded as lossy UTF-8
	LineNumbers []int   // Matched lines, ascending, each inside some chunk
	Chunks      []Chunk // Ordered, non-overlapping ranges to print
}

// Selection names lines of interest in a file whose contents have not been
// read yet. Chunks may be empty, in which case they are derived from the
// line numbers once the file length is known.
type Selection struct {
	Path        string
	LineNumbers []int
	Chunks      []Chunk
}

// ColorSupport describes the colors the output terminal can display.
type ColorSupport int

// Terminal color capabilities.
const (
	TrueColor ColorSupport = iota
	Ansi256
	Ansi16
)

// String returns the flag spelling of the color support level.
func (c ColorSupport) String() string {
	switch c {
	case Ansi16:
		return "ansi16"
	case Ansi256:
		return "ansi256"
	default:
		return "truecolor"
	}
}

// ParseColorSupport parses the flag spelling of a color support level.
func ParseColorSupport(s string) (ColorSupport, error) {
	switch s {
	case "truecolor", "24bit":
		return TrueColor, nil
	case "ansi256", "256":
		return Ansi256, nil
	case "ansi16", "16":
		return Ansi16, nil
	default:
		return TrueColor, fmt.Errorf("unknown color support %q (want truecolor, ansi256 or ansi16)", s)
	}
}

// Options configures how files are printed.
type Options struct {
	TabWidth        int          // Columns per tab; 0 passes tabs through
	Theme           string       // Theme name; empty selects the default
	Grid            bool         // Draw gutter bar and horizontal rules
	BackgroundColor bool         // Fill every line with the theme background
	TermWidth       int          // Terminal width in columns
	ColorSupport    ColorSupport // Color capability of the terminal
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TabWidth:     4,
		Grid:         true,
		TermWidth:    80,
		ColorSupport: TrueColor,
	}
}

// ThemeName returns the configured theme name, or the default for the
// configured color support when none is set.
func (o Options) ThemeName() string {
	if o.Theme != "" {
		return o.Theme
	}
	if o.ColorSupport == Ansi16 {
		return "ansi"
	}
	return "Monokai Extended"
}

// Printer prints files to its output.
type Printer interface {
	Print(file File) error
}

// LockedWriter is the exclusive view of a Sink returned by Lock.
type LockedWriter interface {
	io.Writer
	Flush() error
	Unlock()
}

// Sink is an output shared between printers running concurrently. Each
// printed file is written under a single Lock.
type Sink interface {
	Lock() LockedWriter
}

// SelectionLoader turns selections into printable files.
type SelectionLoader interface {
	Load(sel Selection) (File, error)
}

// SelectionParser reads selections from a stream, such as a unified diff
// or ripgrep JSON output.
type SelectionParser interface {
	Parse(r io.Reader) ([]Selection, error)
}

// GitRunner provides access to git operations.
type GitRunner interface {
	// Diff returns the unified diff between rev and the working tree of the
	// repository at repoPath.
	Diff(ctx context.Context, repoPath, rev string) (string, error)
	// Root returns the top-level directory of the repository, which diff
	// paths are relative to.
	Root(ctx context.Context, repoPath string) (string, error)
}
