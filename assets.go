package chunkview

import (
	"fmt"
	"io"
)

// Assets bundles the themes and syntax services a printer draws on.
type Assets struct {
	Themes       []ThemeSet // Searched in order; earlier sets win
	Detector     SyntaxDetector
	Highlighters HighlighterFactory
}

// Theme resolves name against the theme sets.
func (a Assets) Theme(name string) (*Theme, error) {
	return ResolveTheme(name, a.Themes...)
}

// ListThemes writes the names of all themes in sets, one per line. Names
// from earlier sets come first and no name is written twice.
func ListThemes(w io.Writer, sets ...ThemeSet) error {
	for _, name := range ThemeNames(sets...) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
