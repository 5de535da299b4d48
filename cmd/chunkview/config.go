package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fwojciec/chunkview"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrConflictingInputs is returned when more than one input mode is chosen.
var ErrConflictingInputs = errors.New("choose at most one of --diff, --git, --rg and --jsonl")

// ErrNoInput is returned when no locations and no input mode are given.
var ErrNoInput = errors.New("nothing to print: give FILE:LINE arguments or one of --diff, --git, --rg and --jsonl")

// Config holds the settings resolved from flags, environment and config file.
type Config struct {
	// Inputs. These come from the command line only.
	Locations  []string
	Diff       bool
	Git        string
	Ripgrep    bool
	JSONL      bool
	Emit       bool
	ListThemes bool

	// Presentation. These may also come from CHUNKVIEW_* variables or
	// the config file.
	Context    int
	Theme      string
	TabWidth   int
	NoGrid     bool
	Background bool
	Width      int
	Color      string
	Debug      bool
	Jobs       int
}

// StdinMode reports whether the input mode reads from stdin.
func (c Config) StdinMode() bool {
	return c.Diff || c.Ripgrep || c.JSONL
}

// LoadConfig parses args. Presentation settings fall back to CHUNKVIEW_*
// environment variables, then to config.yaml in configDir, then to
// defaults. Usage goes to stderr; -h returns pflag.ErrHelp.
func LoadConfig(args []string, configDir string, stderr io.Writer) (Config, error) {
	var cfg Config
	var configFile string

	flags := pflag.NewFlagSet("chunkview", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&cfg.Diff, "diff", false, "Read a unified diff from stdin and print the added lines")
	flags.StringVar(&cfg.Git, "git", "", "Print lines added since git revision `REV`")
	flags.BoolVar(&cfg.Ripgrep, "rg", false, "Read `rg --json` output from stdin")
	flags.BoolVar(&cfg.JSONL, "jsonl", false, "Read selection records from stdin")
	flags.BoolVar(&cfg.Emit, "emit", false, "Write resolved selection records instead of printing")
	flags.BoolVar(&cfg.ListThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default: <config dir>/config.yaml)")

	flags.IntP("context", "C", 2, "Lines of context around each matched line")
	flags.StringP("theme", "t", "", "Theme name (default depends on --color)")
	flags.Int("tab-width", chunkview.DefaultOptions().TabWidth, "Columns per tab; 0 prints tabs as is")
	flags.Bool("no-grid", false, "Omit the gutter bar and horizontal rules")
	flags.Bool("background", false, "Fill every line with the theme background")
	flags.IntP("width", "w", 0, "Output width (0 uses the terminal width)")
	flags.String("color", "", "Color support: truecolor|ansi256|ansi16 (default: detected)")
	flags.Bool("debug", false, "Log theme and syntax resolution to stderr")
	flags.IntP("jobs", "j", runtime.GOMAXPROCS(0), "Files to render concurrently")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: chunkview [flags] FILE:LINE[,LINE|START-END...]...")
		fmt.Fprintln(stderr, "\nPrints syntax highlighted excerpts around the given lines.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Locations = flags.Args()

	v := viper.New()
	v.SetEnvPrefix("CHUNKVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"context", "theme", "tab-width", "no-grid", "background", "width", "color", "debug", "jobs"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return Config{}, err
		}
	}
	if err := readConfigFile(v, configFile, configDir); err != nil {
		return Config{}, err
	}

	cfg.Context = v.GetInt("context")
	cfg.Theme = v.GetString("theme")
	cfg.TabWidth = v.GetInt("tab-width")
	cfg.NoGrid = v.GetBool("no-grid")
	cfg.Background = v.GetBool("background")
	cfg.Width = v.GetInt("width")
	cfg.Color = v.GetString("color")
	cfg.Debug = v.GetBool("debug")
	cfg.Jobs = v.GetInt("jobs")

	return cfg, cfg.validate()
}

func readConfigFile(v *viper.Viper, configFile, configDir string) error {
	switch {
	case configFile != "":
		v.SetConfigFile(configFile)
	case configDir != "":
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	default:
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.ListThemes {
		return nil
	}
	modes := 0
	for _, on := range []bool{c.Diff, c.Git != "", c.Ripgrep, c.JSONL} {
		if on {
			modes++
		}
	}
	if modes > 1 || (modes == 1 && len(c.Locations) > 0) {
		return ErrConflictingInputs
	}
	if modes == 0 && len(c.Locations) == 0 {
		return ErrNoInput
	}
	if c.Context < 0 {
		return fmt.Errorf("invalid context %d: must not be negative", c.Context)
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("invalid tab width %d: must not be negative", c.TabWidth)
	}
	if c.Color != "" {
		if _, err := chunkview.ParseColorSupport(c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Options returns printer options. detected is the terminal's color support
// and termWidth its width, or 0 when stdout is not a terminal.
func (c Config) Options(detected chunkview.ColorSupport, termWidth int) chunkview.Options {
	opts := chunkview.DefaultOptions()
	opts.TabWidth = c.TabWidth
	opts.Theme = c.Theme
	opts.Grid = !c.NoGrid
	opts.BackgroundColor = c.Background

	switch {
	case c.Width > 0:
		opts.TermWidth = c.Width
	case termWidth > 0:
		opts.TermWidth = termWidth
	}

	opts.ColorSupport = detected
	if cs, err := chunkview.ParseColorSupport(c.Color); err == nil {
		opts.ColorSupport = cs
	}
	return opts
}
