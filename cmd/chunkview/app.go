package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/jsonl"
	"golang.org/x/sync/errgroup"
)

// ErrNoSelections is returned when the input selects no lines.
var ErrNoSelections = errors.New("no lines selected")

// ErrFilesFailed is returned when some files could not be loaded. The
// others are still printed.
var ErrFilesFailed = errors.New("some files could not be printed")

// App encapsulates the application logic for testing.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Config Config

	DiffParser      chunkview.SelectionParser
	RipgrepParser   chunkview.SelectionParser
	SelectionReader chunkview.SelectionParser
	Git             chunkview.GitRunner
	// NewLoader returns a loader resolving relative paths from root, or
	// from the working directory when root is empty.
	NewLoader func(root string) chunkview.SelectionLoader
	Printer   chunkview.Printer
	Warn      func(format string, args ...any)
}

// Run collects selections from the configured input and prints them.
func (a *App) Run(ctx context.Context) error {
	sels, root, err := a.selections(ctx)
	if err != nil {
		return err
	}
	if len(sels) == 0 {
		return ErrNoSelections
	}

	loader := a.NewLoader(root)
	if a.Config.Emit {
		return a.emit(sels, loader)
	}
	return a.print(ctx, sels, loader)
}

func (a *App) selections(ctx context.Context) ([]chunkview.Selection, string, error) {
	switch {
	case a.Config.Diff:
		sels, err := a.DiffParser.Parse(a.Stdin)
		return sels, "", err
	case a.Config.Ripgrep:
		sels, err := a.RipgrepParser.Parse(a.Stdin)
		return sels, "", err
	case a.Config.JSONL:
		sels, err := a.SelectionReader.Parse(a.Stdin)
		return sels, "", err
	case a.Config.Git != "":
		root, err := a.Git.Root(ctx, ".")
		if err != nil {
			return nil, "", err
		}
		diff, err := a.Git.Diff(ctx, ".", a.Config.Git)
		if err != nil {
			return nil, "", err
		}
		sels, err := a.DiffParser.Parse(strings.NewReader(diff))
		return sels, root, err
	default:
		sels, err := ParseLocations(a.Config.Locations)
		return sels, "", err
	}
}

// print loads and prints files concurrently. Output order between files is
// the order in which they finish rendering. Load failures are reported
// after all files are printed; print failures stop the run.
func (a *App) print(ctx context.Context, sels []chunkview.Selection, loader chunkview.SelectionLoader) error {
	loadErrs := make([]error, len(sels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, a.Config.Jobs))

	for i, sel := range sels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := loader.Load(sel)
			if err != nil {
				loadErrs[i] = err
				return nil
			}
			return a.Printer.Print(file)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return a.reportLoadErrors(loadErrs)
}

// emit writes the selections with chunks filled in, in input order.
func (a *App) emit(sels []chunkview.Selection, loader chunkview.SelectionLoader) error {
	loadErrs := make([]error, len(sels))
	out := make([]chunkview.Selection, 0, len(sels))
	for i, sel := range sels {
		file, err := loader.Load(sel)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		out = append(out, chunkview.Selection{Path: file.Path, LineNumbers: file.LineNumbers, Chunks: file.Chunks})
	}
	if err := jsonl.WriteSelections(a.Stdout, out); err != nil {
		return err
	}
	return a.reportLoadErrors(loadErrs)
}

func (a *App) reportLoadErrors(errs []error) error {
	failed := 0
	for _, err := range errs {
		if err != nil {
			a.Warn("%v", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", ErrFilesFailed, failed, len(errs))
	}
	return nil
}
