package yaml_test

import (
	"testing"
	"testing/fstest"

	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinThemes(t *testing.T) {
	t.Parallel()

	t.Run("ships the default themes", func(t *testing.T) {
		t.Parallel()

		themes, err := yaml.LoadBuiltinThemes()

		require.NoError(t, err)
		assert.Equal(t, []string{"GitHub", "Monokai Extended", "Nord", "ansi", "base16-256"}, themes.Names())
	})

	t.Run("encodes the ansi theme as palette indices", func(t *testing.T) {
		t.Parallel()

		themes, err := yaml.LoadBuiltinThemes()
		require.NoError(t, err)

		theme, ok := themes.Theme("ansi")

		require.True(t, ok)
		assert.Equal(t, chunkview.Transparent, *theme.Background)
		for class, rule := range theme.Rules {
			if rule.Foreground != nil {
				assert.Equal(t, uint8(0), rule.Foreground.A, "rule: %s", class)
				assert.LessOrEqual(t, rule.Foreground.R, uint8(7), "rule: %s", class)
			}
		}
	})

	t.Run("gives Monokai Extended a line highlight", func(t *testing.T) {
		t.Parallel()

		themes, err := yaml.LoadBuiltinThemes()
		require.NoError(t, err)

		theme, ok := themes.Theme("Monokai Extended")

		require.True(t, ok)
		c, ok := theme.MatchColor()
		assert.True(t, ok)
		assert.Equal(t, chunkview.RGB(0x3e, 0x3d, 0x32), c)
	})

	t.Run("reports unknown names", func(t *testing.T) {
		t.Parallel()

		themes, err := yaml.LoadBuiltinThemes()
		require.NoError(t, err)

		_, ok := themes.Theme("monokai")

		assert.False(t, ok)
	})
}

func TestLoadThemes(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty set for a missing directory", func(t *testing.T) {
		t.Parallel()

		themes, err := yaml.LoadThemes(fstest.MapFS{}, "themes")

		require.NoError(t, err)
		assert.Empty(t, themes.Names())
	})

	t.Run("ignores files without a yaml extension", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"themes/a.yml":      {Data: []byte("name: a\n")},
			"themes/README.md":  {Data: []byte("# themes\n")},
			"themes/b.yaml":     {Data: []byte("name: b\n")},
			"themes/sub/c.yaml": {Data: []byte("name: c\n")},
		}

		themes, err := yaml.LoadThemes(fsys, "themes")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, themes.Names())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"themes/a.yaml": {Data: []byte("name: same\n")},
			"themes/b.yaml": {Data: []byte("name: same\n")},
		}

		_, err := yaml.LoadThemes(fsys, "themes")

		assert.ErrorContains(t, err, `yaml: theme b.yaml: duplicate theme name "same"`)
	})

	t.Run("names the file of a broken theme", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"themes/broken.yaml": {Data: []byte("name: x\nbackground: blue\n")},
		}

		_, err := yaml.LoadThemes(fsys, "themes")

		assert.ErrorContains(t, err, "yaml: theme broken.yaml: background: invalid color")
	})
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	t.Run("decodes colors and rules", func(t *testing.T) {
		t.Parallel()

		theme, err := yaml.ParseTheme([]byte(`
name: Sample
background: "#101010"
foreground: "#eeeeee"
gutter: "#05000000"
rules:
  Keyword: {fg: "#ff0000", font: [bold, underline]}
  KeywordType: {font: []}
  Comment: {bg: "#00000001"}
`))

		require.NoError(t, err)
		assert.Equal(t, "Sample", theme.Name)
		assert.Equal(t, chunkview.RGB(0x10, 0x10, 0x10), *theme.Background)
		assert.Equal(t, chunkview.RGB(0xee, 0xee, 0xee), *theme.Foreground)
		assert.Equal(t, chunkview.ANSIColor(5), *theme.GutterForeground)
		assert.Nil(t, theme.LineHighlight)

		kw := theme.Rules["Keyword"]
		assert.Equal(t, chunkview.RGB(0xff, 0, 0), *kw.Foreground)
		assert.Nil(t, kw.Background)
		assert.Equal(t, chunkview.Bold|chunkview.Underline, *kw.FontStyle)

		kt := theme.Rules["KeywordType"]
		require.NotNil(t, kt.FontStyle)
		assert.Equal(t, chunkview.FontStyle(0), *kt.FontStyle)

		assert.Equal(t, chunkview.Transparent, *theme.Rules["Comment"].Background)
		assert.Nil(t, theme.Rules["Comment"].FontStyle)
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseTheme([]byte("background: \"#000000\"\n"))

		assert.EqualError(t, err, "missing required field: name")
	})

	t.Run("rejects unknown font attributes", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseTheme([]byte("name: x\nrules:\n  Keyword: {font: [blink]}\n"))

		assert.EqualError(t, err, `rule Keyword: font: unknown attribute "blink"`)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseTheme([]byte("name: [unterminated\n"))

		assert.Error(t, err)
	})
}
