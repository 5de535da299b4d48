package termenv_test

import (
	"bytes"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/mock"
	"github.com/fwojciec/chunkview/termenv"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var csi = regexp.MustCompile("\x1b\\[[0-9;]*m")

var cjkWidths = &runewidth.Condition{EastAsianWidth: true, StrictEmojiNeutral: true}

// visibleWidth measures a rendered line. Rule and gutter glyphs are drawn
// one column wide.
func visibleWidth(line string) int {
	w := 0
	for _, r := range csi.ReplaceAllString(line, "") {
		if strings.ContainsRune("─│├┬┴", r) {
			w++
			continue
		}
		w += cjkWidths.RuneWidth(r)
	}
	return w
}

type generatedFile struct {
	file chunkview.File
	opts chunkview.Options
}

func drawFile(rt *rapid.T, background bool) generatedFile {
	alphabet := []rune("abcxyz019 _(){}.é·日本語\t")
	line := rapid.Map(rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 40),
		func(rs []rune) string { return string(rs) })
	lines := rapid.SliceOfN(line, 1, 40).Draw(rt, "lines")
	finalNewline := rapid.Bool().Draw(rt, "finalNewline")

	contents := strings.Join(lines, "\n")
	if finalNewline {
		contents += "\n"
	}
	lastLine := chunkview.LineCount([]byte(contents))
	if lastLine == 0 {
		contents, lastLine = "\n", 1
	}

	matched := rapid.SliceOfN(rapid.IntRange(1, lastLine), 1, 5).Draw(rt, "matched")
	context := rapid.IntRange(0, 4).Draw(rt, "context")
	chunks := chunkview.ChunksAround(matched, context, lastLine)

	opts := testOptions()
	opts.Grid = rapid.Bool().Draw(rt, "grid")
	opts.TabWidth = rapid.IntRange(0, 8).Draw(rt, "tabWidth")
	opts.BackgroundColor = background

	lnumWidth := len(strconv.Itoa(chunks[len(chunks)-1].End))
	if len(chunks) > 1 {
		lnumWidth = max(lnumWidth, 3)
	}
	gutter := lnumWidth + 2
	if opts.Grid {
		gutter += 2
	}
	opts.TermWidth = rapid.IntRange(gutter+2, gutter+50).Draw(rt, "termWidth")

	return generatedFile{
		file: chunkview.File{
			Path:        "p",
			Contents:    []byte(contents),
			LineNumbers: chunkview.NormalizeLineNumbers(matched),
			Chunks:      chunks,
		},
		opts: opts,
	}
}

func renderRapid(rt *rapid.T, g generatedFile, assets chunkview.Assets) string {
	var out bytes.Buffer
	p, err := termenv.NewPrinter(termenv.NewSink(&out), g.opts, assets)
	require.NoError(rt, err)
	require.NoError(rt, p.Print(g.file))
	return out.String()
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestProperty_EveryLineEndsWithReset(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := drawFile(rt, rapid.Bool().Draw(rt, "background"))

		got := renderRapid(rt, g, newFactoryAssets())

		require.True(rt, strings.HasSuffix(got, "\n"))
		for _, line := range outputLines(got) {
			require.True(rt, strings.HasSuffix(line, reset), "line %q", line)
		}
	})
}

func TestProperty_BackgroundFillsTerminalWidth(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := drawFile(rt, true)

		got := renderRapid(rt, g, newFactoryAssets())

		for _, line := range outputLines(got) {
			require.Equal(rt, g.opts.TermWidth, visibleWidth(line), "line %q", line)
		}
	})
}

func TestProperty_HighlighterSeesEveryLineUpToTheLastChunk(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := drawFile(rt, false)

		var skipped, highlighted []int
		lnum := 0
		assets := newFactoryAssets()
		assets.Highlighters = &mock.HighlighterFactory{NewHighlighterFn: func(_, _ string, theme *chunkview.Theme) chunkview.LineHighlighter {
			words := &wordHighlighter{theme: theme}
			return &mock.LineHighlighter{
				SkipFn: func(string) {
					lnum++
					skipped = append(skipped, lnum)
				},
				HighlightFn: func(line string) []chunkview.Token {
					lnum++
					highlighted = append(highlighted, lnum)
					return words.Highlight(line)
				},
			}
		}}

		renderRapid(rt, g, assets)

		var wantHighlighted []int
		lastEnd := g.file.Chunks[len(g.file.Chunks)-1].End
		for n := 1; n <= lastEnd; n++ {
			if slices.ContainsFunc(g.file.Chunks, func(c chunkview.Chunk) bool { return c.Contains(n) }) {
				wantHighlighted = append(wantHighlighted, n)
			}
		}
		require.Equal(rt, lastEnd, lnum)
		require.Equal(rt, wantHighlighted, highlighted)
		require.Equal(rt, lastEnd-len(wantHighlighted), len(skipped))
	})
}
