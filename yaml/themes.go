// Package yaml provides theme sets decoded from YAML theme files.
package yaml

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/fwojciec/chunkview"
	yamllib "gopkg.in/yaml.v3"
)

// builtinThemes embeds the themes shipped with chunkview.
//
//go:embed themes/*.yaml
var builtinThemes embed.FS

// Compile-time interface verification.
var _ chunkview.ThemeSet = (*Themes)(nil)

// themeFile is the on-disk form of a theme. Colors are "#RRGGBB" or
// "#RRGGBBAA" strings; see chunkview.Color for the meaning of the alpha
// byte.
type themeFile struct {
	Name          string              `yaml:"name"`
	Background    string              `yaml:"background"`
	Foreground    string              `yaml:"foreground"`
	Gutter        string              `yaml:"gutter"`
	LineHighlight string              `yaml:"line_highlight"`
	Rules         map[string]ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Foreground string    `yaml:"fg"`
	Background string    `yaml:"bg"`
	Font       *[]string `yaml:"font"` // An empty list clears inherited attributes
}

// Themes is a set of themes decoded from YAML.
type Themes struct {
	names  []string
	themes map[string]*chunkview.Theme
}

// LoadBuiltinThemes decodes the embedded themes.
func LoadBuiltinThemes() (*Themes, error) {
	return LoadThemes(builtinThemes, "themes")
}

// LoadThemes decodes every .yaml and .yml file in dir of fsys. A missing
// directory yields an empty set.
func LoadThemes(fsys fs.FS, dir string) (*Themes, error) {
	set := &Themes{themes: make(map[string]*chunkview.Theme)}

	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yaml: reading theme directory: %w", err)
	}

	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		// Use path.Join (not filepath.Join) since fs.FS paths always use forward slashes
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("yaml: theme %s: %w", entry.Name(), err)
		}
		theme, err := ParseTheme(content)
		if err != nil {
			return nil, fmt.Errorf("yaml: theme %s: %w", entry.Name(), err)
		}
		if _, dup := set.themes[theme.Name]; dup {
			return nil, fmt.Errorf("yaml: theme %s: duplicate theme name %q", entry.Name(), theme.Name)
		}
		set.themes[theme.Name] = theme
		set.names = append(set.names, theme.Name)
	}

	sort.Strings(set.names)
	return set, nil
}

// Names returns the theme names in byte order.
func (s *Themes) Names() []string {
	return s.names
}

// Theme returns the named theme.
func (s *Themes) Theme(name string) (*chunkview.Theme, bool) {
	theme, ok := s.themes[name]
	return theme, ok
}

// ParseTheme decodes a single YAML theme.
func ParseTheme(content []byte) (*chunkview.Theme, error) {
	var tf themeFile
	if err := yamllib.Unmarshal(content, &tf); err != nil {
		return nil, err
	}
	if tf.Name == "" {
		return nil, errors.New("missing required field: name")
	}

	theme := &chunkview.Theme{
		Name:  tf.Name,
		Rules: make(map[string]chunkview.StyleModifier, len(tf.Rules)),
	}
	var err error
	if theme.Background, err = optionalColor(tf.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if theme.Foreground, err = optionalColor(tf.Foreground); err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	if theme.GutterForeground, err = optionalColor(tf.Gutter); err != nil {
		return nil, fmt.Errorf("gutter: %w", err)
	}
	if theme.LineHighlight, err = optionalColor(tf.LineHighlight); err != nil {
		return nil, fmt.Errorf("line_highlight: %w", err)
	}

	for class, rf := range tf.Rules {
		rule, err := parseRule(rf)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", class, err)
		}
		theme.Rules[class] = rule
	}
	return theme, nil
}

func parseRule(rf ruleFile) (chunkview.StyleModifier, error) {
	var rule chunkview.StyleModifier
	var err error
	if rule.Foreground, err = optionalColor(rf.Foreground); err != nil {
		return rule, fmt.Errorf("fg: %w", err)
	}
	if rule.Background, err = optionalColor(rf.Background); err != nil {
		return rule, fmt.Errorf("bg: %w", err)
	}
	if rf.Font != nil {
		var font chunkview.FontStyle
		for _, attr := range *rf.Font {
			switch strings.ToLower(attr) {
			case "bold":
				font |= chunkview.Bold
			case "underline":
				font |= chunkview.Underline
			case "italic":
				font |= chunkview.Italic
			default:
				return rule, fmt.Errorf("font: unknown attribute %q", attr)
			}
		}
		rule.FontStyle = &font
	}
	return rule, nil
}

func optionalColor(s string) (*chunkview.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := chunkview.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
