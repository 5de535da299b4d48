package main_test

import (
	"testing"

	"github.com/fwojciec/chunkview"
	main "github.com/fwojciec/chunkview/cmd/chunkview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocations(t *testing.T) {
	t.Parallel()

	t.Run("parses lines and ranges", func(t *testing.T) {
		t.Parallel()

		sels, err := main.ParseLocations([]string{"main.go:12,3-5"})

		require.NoError(t, err)
		assert.Equal(t, []chunkview.Selection{{Path: "main.go", LineNumbers: []int{3, 4, 5, 12}}}, sels)
	})

	t.Run("merges arguments for the same file", func(t *testing.T) {
		t.Parallel()

		sels, err := main.ParseLocations([]string{"b.go:9", "a.go:1", "b.go:2,9"})

		require.NoError(t, err)
		assert.Equal(t, []chunkview.Selection{
			{Path: "b.go", LineNumbers: []int{2, 9}},
			{Path: "a.go", LineNumbers: []int{1}},
		}, sels)
	})

	t.Run("splits at the last colon", func(t *testing.T) {
		t.Parallel()

		sels, err := main.ParseLocations([]string{`C:\src\main.go:7`})

		require.NoError(t, err)
		assert.Equal(t, `C:\src\main.go`, sels[0].Path)
		assert.Equal(t, []int{7}, sels[0].LineNumbers)
	})

	t.Run("rejects malformed locations", func(t *testing.T) {
		t.Parallel()

		for _, arg := range []string{"main.go", ":3", "main.go:", "main.go:x", "main.go:0", "main.go:5-2", "main.go:1,", "main.go:1-999999"} {
			_, err := main.ParseLocations([]string{arg})
			assert.Error(t, err, "input: %s", arg)
		}
	})
}
