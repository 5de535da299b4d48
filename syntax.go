package chunkview

// Token is a highlighted slice of a line.
type Token struct {
	Style Style
	Text  string
}

// LineHighlighter highlights a file one line at a time. Lines must be fed in
// file order, each exactly once, through either Skip or Highlight.
type LineHighlighter interface {
	// Skip advances the highlighter over line and discards the tokens.
	Skip(line string)
	// Highlight advances the highlighter over line and returns its tokens.
	// Token texts are sub-slices of line and concatenate to line.
	Highlight(line string) []Token
}

// SyntaxDetector determines the syntax of a file.
type SyntaxDetector interface {
	// DetectSyntax returns a syntax name for the file at path, or an empty
	// string if it cannot tell. head is the beginning of the file contents.
	DetectSyntax(path string, head []byte) string
}

// HighlighterFactory creates a highlighter for one file.
type HighlighterFactory interface {
	// NewHighlighter returns a highlighter for contents, which is the whole
	// file decoded with DecodeLossy. An empty or unknown syntax name
	// highlights as plain text.
	NewHighlighter(syntax, contents string, theme *Theme) LineHighlighter
}
