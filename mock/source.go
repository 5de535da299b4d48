package mock

import (
	"context"
	"io"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var (
	_ chunkview.SelectionParser = (*SelectionParser)(nil)
	_ chunkview.SelectionLoader = (*SelectionLoader)(nil)
	_ chunkview.GitRunner       = (*GitRunner)(nil)
	_ chunkview.Printer         = (*Printer)(nil)
)

// SelectionParser is a mock implementation of chunkview.SelectionParser.
type SelectionParser struct {
	ParseFn func(r io.Reader) ([]chunkview.Selection, error)
}

func (p *SelectionParser) Parse(r io.Reader) ([]chunkview.Selection, error) {
	return p.ParseFn(r)
}

// SelectionLoader is a mock implementation of chunkview.SelectionLoader.
type SelectionLoader struct {
	LoadFn func(sel chunkview.Selection) (chunkview.File, error)
}

func (l *SelectionLoader) Load(sel chunkview.Selection) (chunkview.File, error) {
	return l.LoadFn(sel)
}

// GitRunner is a mock implementation of chunkview.GitRunner.
type GitRunner struct {
	DiffFn func(ctx context.Context, repoPath, rev string) (string, error)
	RootFn func(ctx context.Context, repoPath string) (string, error)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath, rev string) (string, error) {
	return g.DiffFn(ctx, repoPath, rev)
}

func (g *GitRunner) Root(ctx context.Context, repoPath string) (string, error) {
	return g.RootFn(ctx, repoPath)
}

// Printer is a mock implementation of chunkview.Printer.
type Printer struct {
	PrintFn func(file chunkview.File) error
}

func (p *Printer) Print(file chunkview.File) error {
	return p.PrintFn(file)
}
