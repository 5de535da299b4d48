// Package gitdiff turns unified diffs into selections using
// bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.SelectionParser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns a selection for every file the diff
// adds lines to. Each hunk becomes a chunk spanning its new-side range and
// the added lines are the matched lines. Deleted and binary files and hunks
// that only delete are skipped.
func (p *Parser) Parse(r io.Reader) ([]chunkview.Selection, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	var sels []chunkview.Selection
	for _, f := range files {
		if f.IsDelete || f.IsBinary {
			continue
		}
		sel := convertFile(f)
		if len(sel.LineNumbers) == 0 {
			continue
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func convertFile(f *gitdiff.File) chunkview.Selection {
	sel := chunkview.Selection{Path: f.NewName}

	for _, frag := range f.TextFragments {
		added := addedLines(frag)
		if len(added) == 0 {
			continue
		}
		sel.LineNumbers = append(sel.LineNumbers, added...)

		// go-gitdiff parses hunks in order, but hunks from hand-edited
		// diffs may touch.
		c := chunkview.Chunk{
			Start: int(frag.NewPosition),
			End:   int(frag.NewPosition + frag.NewLines - 1),
		}
		if n := len(sel.Chunks); n > 0 && c.Start <= sel.Chunks[n-1].End+1 {
			sel.Chunks[n-1].End = max(sel.Chunks[n-1].End, c.End)
			continue
		}
		sel.Chunks = append(sel.Chunks, c)
	}
	sel.LineNumbers = chunkview.NormalizeLineNumbers(sel.LineNumbers)
	return sel
}

// addedLines returns the new-side line numbers of the lines frag adds.
func addedLines(frag *gitdiff.TextFragment) []int {
	var lines []int
	newLineNum := int(frag.NewPosition)
	for _, l := range frag.Lines {
		switch l.Op {
		case gitdiff.OpContext:
			newLineNum++
		case gitdiff.OpAdd:
			lines = append(lines, newLineNum)
			newLineNum++
		}
	}
	return lines
}
