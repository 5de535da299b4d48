package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.SelectionParser = (*SelectionReader)(nil)

// selectionRecord is the JSONL form of a selection.
type selectionRecord struct {
	Path   string        `json:"path"`
	Lines  []int         `json:"lines"`
	Chunks []chunkRecord `json:"chunks,omitempty"`
}

type chunkRecord struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SelectionReader reads selection records, one JSON object per line:
//
//	{"path":"main.go","lines":[12,40],"chunks":[{"start":9,"end":15}]}
//
// Chunks are optional.
type SelectionReader struct{}

// NewSelectionReader creates a new SelectionReader.
func NewSelectionReader() *SelectionReader {
	return &SelectionReader{}
}

// Parse reads all selection records from r.
func (s *SelectionReader) Parse(r io.Reader) ([]chunkview.Selection, error) {
	var sels []chunkview.Selection
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec selectionRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if rec.Path == "" {
			return nil, fmt.Errorf("line %d: missing path", lineNum)
		}
		sel := chunkview.Selection{Path: rec.Path, LineNumbers: rec.Lines}
		for _, c := range rec.Chunks {
			sel.Chunks = append(sel.Chunks, chunkview.Chunk{Start: c.Start, End: c.End})
		}
		sels = append(sels, sel)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sels, nil
}

// WriteSelections writes sels to w as selection records.
func WriteSelections(w io.Writer, sels []chunkview.Selection) error {
	enc := json.NewEncoder(w)
	for _, sel := range sels {
		rec := selectionRecord{Path: sel.Path, Lines: sel.LineNumbers}
		if rec.Lines == nil {
			rec.Lines = []int{}
		}
		for _, c := range sel.Chunks {
			rec.Chunks = append(rec.Chunks, chunkRecord{Start: c.Start, End: c.End})
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
