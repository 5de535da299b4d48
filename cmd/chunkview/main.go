// Command chunkview prints syntax highlighted excerpts of source files
// around selected lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/chroma"
	"github.com/fwojciec/chunkview/enry"
	"github.com/fwojciec/chunkview/fs"
	"github.com/fwojciec/chunkview/git"
	"github.com/fwojciec/chunkview/gitdiff"
	"github.com/fwojciec/chunkview/jsonl"
	"github.com/fwojciec/chunkview/lipgloss"
	"github.com/fwojciec/chunkview/termenv"
	"github.com/fwojciec/chunkview/yaml"
	termenvlib "github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reporter := lipgloss.NewReporter(os.Stderr, nil)
	if err := run(ctx, os.Args[1:], reporter); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		reporter.Error(err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, reporter *lipgloss.Reporter) error {
	configDir := fs.DefaultConfigDir()
	cfg, err := LoadConfig(args, configDir, os.Stderr)
	if err != nil {
		return err
	}

	assets, err := LoadAssets(configDir)
	if err != nil {
		return err
	}
	if cfg.ListThemes {
		return chunkview.ListThemes(os.Stdout, assets.Themes...)
	}

	if cfg.StdinMode() && term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("expected input on stdin, e.g. git diff | chunkview --diff")
	}

	opts := cfg.Options(ColorSupportFor(termenvlib.NewOutput(os.Stdout).EnvColorProfile()), terminalWidth(os.Stdout))
	sink := termenv.NewSink(os.Stdout)
	printer, err := termenv.NewPrinter(sink, opts, assets, termenv.WithLogger(NewLogger(os.Stderr, cfg.Debug)))
	if err != nil {
		return err
	}

	app := &App{
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Config:          cfg,
		DiffParser:      gitdiff.NewParser(),
		RipgrepParser:   jsonl.NewRipgrepParser(),
		SelectionReader: jsonl.NewSelectionReader(),
		Git:             git.NewRunner(),
		NewLoader: func(root string) chunkview.SelectionLoader {
			return &fs.Loader{Root: root, Context: cfg.Context}
		},
		Printer: printer,
		Warn:    reporter.Warn,
	}
	return app.Run(ctx)
}

// LoadAssets assembles themes and syntax support. Themes in configDir/themes
// take precedence over the embedded ones, which take precedence over
// chroma's styles.
func LoadAssets(configDir string) (chunkview.Assets, error) {
	var sets []chunkview.ThemeSet
	if configDir != "" {
		user, err := yaml.LoadThemes(os.DirFS(configDir), "themes")
		if err != nil {
			return chunkview.Assets{}, fmt.Errorf("loading user themes: %w", err)
		}
		sets = append(sets, user)
	}
	builtin, err := yaml.LoadBuiltinThemes()
	if err != nil {
		return chunkview.Assets{}, err
	}
	sets = append(sets, builtin, chroma.NewThemes())

	return chunkview.Assets{
		Themes:       sets,
		Detector:     chroma.NewDetector(enry.NewDetector()),
		Highlighters: chroma.NewHighlighters(),
	}, nil
}

// ColorSupportFor maps a detected terminal profile to a color support
// level. Terminals without color still get the 16 basic colors.
func ColorSupportFor(p termenvlib.Profile) chunkview.ColorSupport {
	switch p {
	case termenvlib.TrueColor:
		return chunkview.TrueColor
	case termenvlib.ANSI256:
		return chunkview.Ansi256
	default:
		return chunkview.Ansi16
	}
}

// NewLogger returns a debug logger on w, or a logger that discards
// everything when debug is off.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
