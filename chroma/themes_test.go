package chroma_test

import (
	"testing"

	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	t.Run("lists chroma styles", func(t *testing.T) {
		t.Parallel()

		names := chroma.NewThemes().Names()

		assert.Contains(t, names, "monokai")
		assert.Contains(t, names, "dracula")
		assert.IsIncreasing(t, names)
	})

	t.Run("converts a style to a theme", func(t *testing.T) {
		t.Parallel()

		theme, ok := chroma.NewThemes().Theme("monokai")

		require.True(t, ok)
		assert.Equal(t, "monokai", theme.Name)
		require.NotNil(t, theme.Background)
		assert.Equal(t, chunkview.RGB(0x27, 0x28, 0x22), *theme.Background)
		require.NotNil(t, theme.LineHighlight)
		require.NotNil(t, theme.GutterForeground)

		rule, ok := theme.Rules["Keyword"]
		require.True(t, ok)
		require.NotNil(t, rule.Foreground)
		assert.Equal(t, chunkview.RGB(0x66, 0xd9, 0xef), *rule.Foreground)
	})

	t.Run("uses opaque colors only", func(t *testing.T) {
		t.Parallel()

		theme, ok := chroma.NewThemes().Theme("dracula")

		require.True(t, ok)
		for name, rule := range theme.Rules {
			if rule.Foreground != nil {
				assert.Equal(t, uint8(0xff), rule.Foreground.A, "rule: %s", name)
			}
		}
	})

	t.Run("reports unknown names", func(t *testing.T) {
		t.Parallel()

		_, ok := chroma.NewThemes().Theme("Monokai Extended")

		assert.False(t, ok)
	})
}
