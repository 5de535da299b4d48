package chunkview_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/chunkview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts an empty file", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, chunkview.File{Path: "a.go"}.Validate())
	})

	t.Run("accepts ordered chunks with matched lines inside", func(t *testing.T) {
		t.Parallel()

		file := chunkview.File{
			Path:        "a.go",
			LineNumbers: []int{3, 12},
			Chunks:      []chunkview.Chunk{{Start: 1, End: 6}, {Start: 10, End: 15}},
		}

		assert.NoError(t, file.Validate())
	})

	cases := []struct {
		name   string
		file   chunkview.File
		reason chunkview.ValidationReason
		msg    string
	}{
		{
			name: "rejects a chunk starting at zero",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{1},
				Chunks:      []chunkview.Chunk{{Start: 0, End: 3}},
			},
			reason: chunkview.ErrInvalidChunk,
			msg:    "a.go: chunk 0 (0-3) is not a valid line range",
		},
		{
			name: "rejects a reversed chunk",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{4},
				Chunks:      []chunkview.Chunk{{Start: 5, End: 4}},
			},
			reason: chunkview.ErrInvalidChunk,
			msg:    "a.go: chunk 0 (5-4) is not a valid line range",
		},
		{
			name: "rejects overlapping chunks",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{2},
				Chunks:      []chunkview.Chunk{{Start: 1, End: 5}, {Start: 5, End: 8}},
			},
			reason: chunkview.ErrChunkOrder,
			msg:    "a.go: chunk 1 (5-8) overlaps or precedes the previous chunk",
		},
		{
			name: "rejects chunks without matched lines",
			file: chunkview.File{
				Path:   "a.go",
				Chunks: []chunkview.Chunk{{Start: 1, End: 5}},
			},
			reason: chunkview.ErrMissingLineNumbers,
			msg:    "a.go: chunks given without any matched line",
		},
		{
			name: "rejects unordered line numbers",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{4, 2},
				Chunks:      []chunkview.Chunk{{Start: 1, End: 5}},
			},
			reason: chunkview.ErrLineOrder,
			msg:    "a.go: line number 2 at index 1 is not in ascending order",
		},
		{
			name: "rejects a line between chunks",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{2, 8},
				Chunks:      []chunkview.Chunk{{Start: 1, End: 5}, {Start: 10, End: 12}},
			},
			reason: chunkview.ErrLineOutsideChunks,
			msg:    "a.go: line number 8 is not inside any chunk",
		},
		{
			name: "rejects a line after the last chunk",
			file: chunkview.File{
				Path:        "a.go",
				LineNumbers: []int{20},
				Chunks:      []chunkview.Chunk{{Start: 1, End: 5}},
			},
			reason: chunkview.ErrLineOutsideChunks,
			msg:    "a.go: line number 20 is not inside any chunk",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.file.Validate()

			var verr *chunkview.ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
			assert.Equal(t, tc.reason, verr.Reason)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}
