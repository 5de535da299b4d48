package chunkview

import "slices"

// ChunksAround returns windows of context lines around each line number,
// merging windows that overlap or touch. Windows are clamped to
// [1, lastLine]; line numbers outside that range are ignored.
func ChunksAround(lineNumbers []int, context, lastLine int) []Chunk {
	if context < 0 {
		context = 0
	}
	sorted := slices.Clone(lineNumbers)
	slices.Sort(sorted)

	var chunks []Chunk
	for _, lnum := range sorted {
		if lnum < 1 || lnum > lastLine {
			continue
		}
		c := Chunk{Start: max(1, lnum-context), End: min(lastLine, lnum+context)}
		if n := len(chunks); n > 0 && c.Start <= chunks[n-1].End+1 {
			chunks[n-1].End = max(chunks[n-1].End, c.End)
			continue
		}
		chunks = append(chunks, c)
	}
	return chunks
}

// NormalizeLineNumbers sorts line numbers and removes duplicates.
func NormalizeLineNumbers(lineNumbers []int) []int {
	out := slices.Clone(lineNumbers)
	slices.Sort(out)
	return slices.Compact(out)
}
