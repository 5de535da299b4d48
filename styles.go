package chunkview

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with an encoding tag in A.
//
// A is not opacity. A == 0 means R holds a terminal palette index (0-7 for
// the basic ANSI colors, above 7 for the 256-color palette). A == 1 means
// the color is transparent and nothing is emitted for it. Any other value
// means a 24-bit RGB color.
type Color struct {
	R, G, B, A uint8
}

// Transparent leaves the terminal's current color untouched.
var Transparent = Color{A: 1}

// RGB returns an opaque 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// ANSIColor returns a palette color: 0-7 are the basic ANSI colors and
// 8-255 are entries of the 256-color palette.
func ANSIColor(index uint8) Color {
	return Color{R: index}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". The six digit form is opaque.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// String returns the color in "#RRGGBBAA" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FontStyle is a set of font attributes.
type FontStyle uint8

// Font attributes. Italic is recognized but never emitted.
const (
	Bold FontStyle = 1 << iota
	Underline
	Italic
)

// Has reports whether all attributes in f are set.
func (s FontStyle) Has(f FontStyle) bool {
	return s&f == f
}

// Style is the visual style of a highlighted token.
type Style struct {
	Foreground Color
	Background Color
	FontStyle  FontStyle
}

// StyleModifier overrides parts of a style. Nil fields leave the
// underlying style unchanged.
type StyleModifier struct {
	Foreground *Color
	Background *Color
	FontStyle  *FontStyle
}

// Apply returns s with the modifier's fields applied.
func (m StyleModifier) Apply(s Style) Style {
	if m.Foreground != nil {
		s.Foreground = *m.Foreground
	}
	if m.Background != nil {
		s.Background = *m.Background
	}
	if m.FontStyle != nil {
		s.FontStyle = *m.FontStyle
	}
	return s
}

// Theme is a named color scheme.
type Theme struct {
	Name             string
	Background       *Color                   // Default background
	Foreground       *Color                   // Default foreground
	GutterForeground *Color                   // Line numbers and rules
	LineHighlight    *Color                   // Background of matched lines
	Rules            map[string]StyleModifier // Keyed by token class, e.g. "LiteralString"
}

// DefaultStyle returns the style of text no rule applies to.
func (t *Theme) DefaultStyle() Style {
	s := Style{
		Foreground: RGB(0, 0, 0),
		Background: RGB(0xff, 0xff, 0xff),
	}
	if t.Foreground != nil {
		s.Foreground = *t.Foreground
	}
	if t.Background != nil {
		s.Background = *t.Background
	}
	return s
}

// GutterColor returns the color of line numbers and rules.
func (t *Theme) GutterColor() Color {
	if t.GutterForeground != nil {
		return *t.GutterForeground
	}
	return RGB(128, 128, 128)
}

// MatchColor returns the background of matched lines, if the theme has one.
func (t *Theme) MatchColor() (Color, bool) {
	if t.LineHighlight != nil {
		return *t.LineHighlight, true
	}
	if t.Background != nil {
		return *t.Background, true
	}
	return Color{}, false
}

// ThemeSet is a named collection of themes.
type ThemeSet interface {
	// Names returns theme names in listing order.
	Names() []string
	// Theme returns the named theme, or false if the set does not have it.
	Theme(name string) (*Theme, bool)
}

// UnknownThemeError is returned when a theme name is in no theme set.
type UnknownThemeError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("Unknown theme '%s'. See --list-themes output", e.Name)
}

// ResolveTheme looks name up in each set in order.
func ResolveTheme(name string, sets ...ThemeSet) (*Theme, error) {
	for _, set := range sets {
		if theme, ok := set.Theme(name); ok {
			return theme, nil
		}
	}
	return nil, &UnknownThemeError{Name: name}
}

// ThemeNames returns the names of all sets in order, keeping the first
// occurrence of each name.
func ThemeNames(sets ...ThemeSet) []string {
	seen := make(map[string]bool)
	var names []string
	for _, set := range sets {
		for _, name := range set.Names() {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
