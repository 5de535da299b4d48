// Package jsonl reads and writes line-delimited JSON: ripgrep's --json
// output and chunkview's own selection records.
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
var _ chunkview.SelectionParser = (*RipgrepParser)(nil)

// maxLineSize is the maximum size for a single JSONL line (4MB).
// ripgrep reports whole matched lines, which can be long in minified files.
const maxLineSize = 4 * 1024 * 1024

// RipgrepParser reads the output of `rg --json`.
type RipgrepParser struct{}

// NewRipgrepParser creates a new RipgrepParser.
func NewRipgrepParser() *RipgrepParser {
	return &RipgrepParser{}
}

type rgMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// rgData is ripgrep's arbitrary data: UTF-8 text, or base64 bytes when the
// value is not valid UTF-8.
type rgData struct {
	Text  *string `json:"text"`
	Bytes []byte  `json:"bytes"`
}

func (d rgData) String() string {
	if d.Text != nil {
		return *d.Text
	}
	return string(d.Bytes)
}

type rgMatch struct {
	Path       rgData `json:"path"`
	Lines      rgData `json:"lines"`
	LineNumber *int   `json:"line_number"`
}

// Parse returns one selection per file with matches, in the order ripgrep
// reported them. A multiline match selects every line it spans. Matches
// without line numbers are ignored. Chunks are left empty.
func (p *RipgrepParser) Parse(r io.Reader) ([]chunkview.Selection, error) {
	var sels []chunkview.Selection
	index := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var msg rgMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if msg.Type != "match" {
			continue
		}
		var m rgMatch
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if m.LineNumber == nil {
			continue
		}

		path := m.Path.String()
		i, ok := index[path]
		if !ok {
			i = len(sels)
			index[path] = i
			sels = append(sels, chunkview.Selection{Path: path})
		}
		n := max(1, chunkview.LineCount([]byte(m.Lines.String())))
		for k := range n {
			sels[i].LineNumbers = append(sels[i].LineNumbers, *m.LineNumber+k)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i := range sels {
		sels[i].LineNumbers = chunkview.NormalizeLineNumbers(sels[i].LineNumbers)
	}
	return sels, nil
}
