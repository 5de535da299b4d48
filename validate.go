package chunkview

import "fmt"

// ValidationReason identifies why a File is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrInvalidChunk       ValidationReason = "invalid_chunk"
	ErrChunkOrder         ValidationReason = "chunk_order"
	ErrLineOrder          ValidationReason = "line_order"
	ErrLineOutsideChunks  ValidationReason = "line_outside_chunks"
	ErrMissingLineNumbers ValidationReason = "missing_line_numbers"
)

// ValidationError describes the first invariant a File violates.
type ValidationError struct {
	Path   string           // File path
	Reason ValidationReason // Which invariant is violated
	Index  int              // Index into Chunks or LineNumbers, depending on Reason
	Chunk  Chunk            // The offending chunk, for chunk reasons
	Line   int              // The offending line number, for line reasons
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Reason {
	case ErrInvalidChunk:
		return fmt.Sprintf("%s: chunk %d (%d-%d) is not a valid line range",
			e.Path, e.Index, e.Chunk.Start, e.Chunk.End)
	case ErrChunkOrder:
		return fmt.Sprintf("%s: chunk %d (%d-%d) overlaps or precedes the previous chunk",
			e.Path, e.Index, e.Chunk.Start, e.Chunk.End)
	case ErrLineOrder:
		return fmt.Sprintf("%s: line number %d at index %d is not in ascending order",
			e.Path, e.Line, e.Index)
	case ErrLineOutsideChunks:
		return fmt.Sprintf("%s: line number %d is not inside any chunk", e.Path, e.Line)
	case ErrMissingLineNumbers:
		return fmt.Sprintf("%s: chunks given without any matched line", e.Path)
	default:
		return fmt.Sprintf("%s: invalid file", e.Path)
	}
}

// Validate checks that chunks are valid, ordered and non-overlapping, and
// that every matched line is ascending and inside a chunk. It returns nil or
// a *ValidationError.
func (f File) Validate() error {
	for i, c := range f.Chunks {
		if c.Start < 1 || c.Start > c.End {
			return &ValidationError{Path: f.Path, Reason: ErrInvalidChunk, Index: i, Chunk: c}
		}
		if i > 0 && c.Start <= f.Chunks[i-1].End {
			return &ValidationError{Path: f.Path, Reason: ErrChunkOrder, Index: i, Chunk: c}
		}
	}
	if len(f.Chunks) > 0 && len(f.LineNumbers) == 0 {
		return &ValidationError{Path: f.Path, Reason: ErrMissingLineNumbers}
	}

	ci := 0
	for i, lnum := range f.LineNumbers {
		if i > 0 && lnum <= f.LineNumbers[i-1] {
			return &ValidationError{Path: f.Path, Reason: ErrLineOrder, Index: i, Line: lnum}
		}
		for ci < len(f.Chunks) && f.Chunks[ci].End < lnum {
			ci++
		}
		if ci == len(f.Chunks) || !f.Chunks[ci].Contains(lnum) {
			return &ValidationError{Path: f.Path, Reason: ErrLineOutsideChunks, Index: i, Line: lnum}
		}
	}
	return nil
}
