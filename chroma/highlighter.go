// Package chroma provides syntax highlighting and syntax detection using
// the chroma library.
package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var (
	_ chunkview.HighlighterFactory = (*Highlighters)(nil)
	_ chunkview.LineHighlighter    = (*Highlighter)(nil)
)

// Highlighters creates chroma-backed line highlighters.
type Highlighters struct{}

// NewHighlighters creates a new highlighter factory.
func NewHighlighters() *Highlighters {
	return &Highlighters{}
}

// NewHighlighter starts a highlighter over contents using the lexer named
// syntax. Unknown or empty names use the plain text lexer.
func (f *Highlighters) NewHighlighter(syntax, contents string, theme *chunkview.Theme) chunkview.LineHighlighter {
	lexer := lexers.Get(syntax)
	if syntax == "" || lexer == nil {
		lexer = lexers.Fallback
	}
	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	h := &Highlighter{styler: NewStyler(theme)}
	// EnsureLF would rewrite CRLF line endings and shift every later token.
	iterator, err := lexer.Tokenise(&chromalib.TokeniseOptions{State: "root"}, contents)
	if err == nil {
		h.next = iterator
	}
	return h
}

// Highlighter tokenizes a whole file once and hands the tokens out line by
// line. A token spanning a line break is split, and its remainder is
// returned first for the following line.
type Highlighter struct {
	next    chromalib.Iterator // nil once the lexer is exhausted
	pending chromalib.Token
	styler  *Styler
}

// Skip consumes the tokens covering line without styling them.
func (h *Highlighter) Skip(line string) {
	h.consume(line, false)
}

// Highlight consumes the tokens covering line and returns them styled.
// Token texts are sub-slices of line. Text the lexer did not cover gets
// the theme default style.
func (h *Highlighter) Highlight(line string) []chunkview.Token {
	return h.consume(line, true)
}

func (h *Highlighter) consume(line string, keep bool) []chunkview.Token {
	var out []chunkview.Token
	pos := 0
	for pos < len(line) {
		tok, ok := h.token()
		if !ok {
			if keep {
				out = append(out, chunkview.Token{Style: h.styler.Default(), Text: line[pos:]})
			}
			break
		}
		n := min(len(tok.Value), len(line)-pos)
		if n < len(tok.Value) {
			h.pending = chromalib.Token{Type: tok.Type, Value: tok.Value[n:]}
		}
		if keep {
			out = append(out, chunkview.Token{Style: h.styler.Style(tok.Type), Text: line[pos : pos+n]})
		}
		pos += n
	}
	return out
}

// token returns the next non-empty token, or false when the lexer is done.
func (h *Highlighter) token() (chromalib.Token, bool) {
	if h.pending.Value != "" {
		tok := h.pending
		h.pending = chromalib.Token{}
		return tok, true
	}
	for h.next != nil {
		tok := h.next()
		if tok == chromalib.EOF {
			h.next = nil
			break
		}
		if tok.Value != "" {
			return tok, true
		}
	}
	return chromalib.EOF, false
}
