package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/chunkview"
	"github.com/fwojciec/chunkview/chroma"
	"github.com/stretchr/testify/assert"
)

func TestStyler_Style(t *testing.T) {
	t.Parallel()

	red := chunkview.RGB(0xff, 0, 0)
	green := chunkview.RGB(0, 0xff, 0)
	blue := chunkview.RGB(0, 0, 0xff)
	bold := chunkview.Bold
	theme := &chunkview.Theme{
		Rules: map[string]chunkview.StyleModifier{
			"Literal":             {Foreground: &red},
			"LiteralString":       {Foreground: &green, FontStyle: &bold},
			"LiteralStringDouble": {Foreground: &blue},
		},
	}

	t.Run("uses theme defaults without a rule", func(t *testing.T) {
		t.Parallel()

		styler := chroma.NewStyler(theme)

		assert.Equal(t, theme.DefaultStyle(), styler.Style(chromalib.Keyword))
		assert.Equal(t, theme.DefaultStyle(), styler.Default())
	})

	t.Run("applies the category rule", func(t *testing.T) {
		t.Parallel()

		styler := chroma.NewStyler(theme)

		assert.Equal(t, red, styler.Style(chromalib.LiteralNumberInteger).Foreground)
	})

	t.Run("lets the sub-category override the category", func(t *testing.T) {
		t.Parallel()

		style := chroma.NewStyler(theme).Style(chromalib.LiteralStringSingle)

		assert.Equal(t, green, style.Foreground)
		assert.True(t, style.FontStyle.Has(chunkview.Bold))
	})

	t.Run("lets the exact type override the sub-category", func(t *testing.T) {
		t.Parallel()

		style := chroma.NewStyler(theme).Style(chromalib.LiteralStringDouble)

		assert.Equal(t, blue, style.Foreground)
		assert.True(t, style.FontStyle.Has(chunkview.Bold))
	})

	t.Run("returns the same style on repeated lookups", func(t *testing.T) {
		t.Parallel()

		styler := chroma.NewStyler(theme)

		assert.Equal(t, styler.Style(chromalib.LiteralString), styler.Style(chromalib.LiteralString))
	})
}
