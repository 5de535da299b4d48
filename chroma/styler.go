package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/chunkview"
)

// Styler maps chroma token types to theme styles.
//
// A token's style starts from the theme defaults; the rules for its
// category, sub-category and exact type are then applied in that order, so
// the most specific rule wins. Results are cached, so a Styler must not be
// shared between goroutines.
type Styler struct {
	theme *chunkview.Theme
	base  chunkview.Style
	cache map[chromalib.TokenType]chunkview.Style
}

// NewStyler creates a styler for theme.
func NewStyler(theme *chunkview.Theme) *Styler {
	return &Styler{
		theme: theme,
		base:  theme.DefaultStyle(),
		cache: make(map[chromalib.TokenType]chunkview.Style),
	}
}

// Default returns the style of text no rule applies to.
func (s *Styler) Default() chunkview.Style {
	return s.base
}

// Style returns the style of tokens of type tt.
func (s *Styler) Style(tt chromalib.TokenType) chunkview.Style {
	if style, ok := s.cache[tt]; ok {
		return style
	}
	style := s.base
	for _, key := range ruleKeys(tt) {
		if rule, ok := s.theme.Rules[key]; ok {
			style = rule.Apply(style)
		}
	}
	s.cache[tt] = style
	return style
}

// ruleKeys returns the rule names that apply to tt, least specific first.
func ruleKeys(tt chromalib.TokenType) []string {
	if tt < 0 {
		return []string{tt.String()}
	}
	keys := []string{tt.Category().String()}
	if sub := tt.SubCategory(); sub != tt.Category() {
		keys = append(keys, sub.String())
	}
	if tt != tt.SubCategory() {
		keys = append(keys, tt.String())
	}
	return keys
}
