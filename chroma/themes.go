package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.ThemeSet = (*Themes)(nil)

// Themes exposes chroma's built-in styles as themes.
type Themes struct{}

// NewThemes creates a theme set backed by chroma's style registry.
func NewThemes() *Themes {
	return &Themes{}
}

// Names returns the registered style names in alphabetical order.
func (t *Themes) Names() []string {
	return styles.Names()
}

// Theme converts the named chroma style to a theme.
func (t *Themes) Theme(name string) (*chunkview.Theme, bool) {
	style, ok := styles.Registry[name]
	if !ok {
		return nil, false
	}
	return ThemeFromStyle(style), true
}

// ThemeFromStyle converts a chroma style to a theme. Rules are keyed by
// token type name and carry fully resolved entries.
func ThemeFromStyle(style *chromalib.Style) *chunkview.Theme {
	theme := &chunkview.Theme{
		Name:  style.Name,
		Rules: make(map[string]chunkview.StyleModifier),
	}

	bg := style.Get(chromalib.Background)
	theme.Background = colorOf(bg.Background)
	theme.Foreground = colorOf(style.Get(chromalib.Text).Colour)
	if bg.Background.IsSet() {
		theme.LineHighlight = colorOf(style.Get(chromalib.LineHighlight).Background)
	}
	theme.GutterForeground = colorOf(style.Get(chromalib.LineNumbers).Colour)

	for _, tt := range style.Types() {
		if tt <= 0 {
			continue
		}
		entry := style.Get(tt)
		font := fontStyleOf(entry)
		theme.Rules[tt.String()] = chunkview.StyleModifier{
			Foreground: colorOf(entry.Colour),
			Background: colorOf(entry.Background),
			FontStyle:  &font,
		}
	}
	return theme
}

func colorOf(c chromalib.Colour) *chunkview.Color {
	if !c.IsSet() {
		return nil
	}
	color := chunkview.RGB(c.Red(), c.Green(), c.Blue())
	return &color
}

func fontStyleOf(e chromalib.StyleEntry) chunkview.FontStyle {
	var fs chunkview.FontStyle
	if e.Bold == chromalib.Yes {
		fs |= chunkview.Bold
	}
	if e.Underline == chromalib.Yes {
		fs |= chunkview.Underline
	}
	if e.Italic == chromalib.Yes {
		fs |= chunkview.Italic
	}
	return fs
}
