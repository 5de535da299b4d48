// Package termenv renders highlighted file excerpts as ANSI-styled
// terminal output.
package termenv

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.Printer = (*Printer)(nil)

// headSize is how much of a file syntax detectors get to look at.
const headSize = 1024

// Printer renders files to a shared sink. It is safe for concurrent use;
// each file is written to the sink in a single locked write.
type Printer struct {
	sink   chunkview.Sink
	opts   chunkview.Options
	theme  *chunkview.Theme
	assets chunkview.Assets
	logger *slog.Logger
	bufs   sync.Pool
}

// Option configures a Printer.
type Option func(*Printer)

// WithLogger sets the logger that records theme and syntax resolution.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// NewPrinter creates a printer writing to sink. The theme named by opts is
// resolved up front; an unknown name fails with *chunkview.UnknownThemeError.
func NewPrinter(sink chunkview.Sink, opts chunkview.Options, assets chunkview.Assets, options ...Option) (*Printer, error) {
	p := &Printer{
		sink:   sink,
		opts:   opts,
		assets: assets,
		logger: slog.New(slog.DiscardHandler),
		bufs:   sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range options {
		opt(p)
	}
	if opts.TabWidth < 0 {
		return nil, fmt.Errorf("invalid tab width %d", opts.TabWidth)
	}

	name := opts.ThemeName()
	theme, err := assets.Theme(name)
	if err != nil {
		return nil, err
	}
	p.theme = theme
	p.logger.Debug("resolved theme", "theme", name, "color", opts.ColorSupport.String())
	return p, nil
}

// Print renders file and writes it to the sink. Files without chunks or
// matched lines print nothing. If the terminal is too narrow to hold the
// gutter and at least one column of code, Print returns
// chunkview.ErrTerminalTooNarrow without writing anything.
func (p *Printer) Print(file chunkview.File) error {
	if len(file.Chunks) == 0 || len(file.LineNumbers) == 0 {
		return nil
	}

	buf := p.bufs.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		p.bufs.Put(buf)
	}()

	d := newDrawer(buf, p.opts, p.theme, file.Chunks)
	if p.opts.TermWidth <= d.gutterWidth() {
		return fmt.Errorf("%s: %w (width %d, gutter %d)",
			file.Path, chunkview.ErrTerminalTooNarrow, p.opts.TermWidth, d.gutterWidth())
	}

	head := file.Contents[:min(len(file.Contents), headSize)]
	syntax := p.assets.Detector.DetectSyntax(file.Path, head)
	p.logger.Debug("resolved syntax", "path", file.Path, "syntax", syntax)

	text := chunkview.DecodeLossy(file.Contents)
	hl := p.assets.Highlighters.NewHighlighter(syntax, text, p.theme)

	d.drawHeader(file.Path)
	d.drawBody(file, text, hl)
	d.drawFooter()

	return p.write(buf.Bytes())
}

func (p *Printer) write(b []byte) error {
	w := p.sink.Lock()
	defer w.Unlock()
	if _, err := w.Write(b); err != nil {
		return err
	}
	return w.Flush()
}
