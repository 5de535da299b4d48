package mock

import "github.com/fwojciec/chunkview"

// Compile-time interface verification.
var (
	_ chunkview.LineHighlighter    = (*LineHighlighter)(nil)
	_ chunkview.SyntaxDetector     = (*SyntaxDetector)(nil)
	_ chunkview.HighlighterFactory = (*HighlighterFactory)(nil)
)

// LineHighlighter is a mock implementation of chunkview.LineHighlighter.
type LineHighlighter struct {
	SkipFn      func(line string)
	HighlightFn func(line string) []chunkview.Token
}

func (h *LineHighlighter) Skip(line string) {
	h.SkipFn(line)
}

func (h *LineHighlighter) Highlight(line string) []chunkview.Token {
	return h.HighlightFn(line)
}

// SyntaxDetector is a mock implementation of chunkview.SyntaxDetector.
type SyntaxDetector struct {
	DetectSyntaxFn func(path string, head []byte) string
}

func (d *SyntaxDetector) DetectSyntax(path string, head []byte) string {
	return d.DetectSyntaxFn(path, head)
}

// HighlighterFactory is a mock implementation of chunkview.HighlighterFactory.
type HighlighterFactory struct {
	NewHighlighterFn func(syntax, contents string, theme *chunkview.Theme) chunkview.LineHighlighter
}

func (f *HighlighterFactory) NewHighlighter(syntax, contents string, theme *chunkview.Theme) chunkview.LineHighlighter {
	return f.NewHighlighterFn(syntax, contents, theme)
}
