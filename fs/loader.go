package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.SelectionLoader = (*Loader)(nil)

// Loader reads the file a selection names and turns the selection into a
// printable file.
type Loader struct {
	// Root resolves relative paths. Empty means the working directory.
	Root string
	// Context is the number of lines printed around each matched line when
	// a selection has no chunks of its own.
	Context int
}

// NewLoader creates a loader that resolves paths from the working directory.
func NewLoader(context int) *Loader {
	return &Loader{Context: context}
}

// Load reads sel.Path and builds chunks from the matched lines when sel has
// none. The result is validated; a matched line past the end of the file is
// reported as a *chunkview.ValidationError.
func (l *Loader) Load(sel chunkview.Selection) (chunkview.File, error) {
	path := sel.Path
	if l.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Root, path)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return chunkview.File{}, err
	}

	file := chunkview.File{
		Path:        sel.Path,
		Contents:    contents,
		LineNumbers: chunkview.NormalizeLineNumbers(sel.LineNumbers),
		Chunks:      sel.Chunks,
	}
	if len(file.Chunks) == 0 {
		lastLine := chunkview.LineCount(contents)
		file.Chunks = chunkview.ChunksAround(file.LineNumbers, l.Context, lastLine)
	}
	if err := file.Validate(); err != nil {
		return chunkview.File{}, err
	}
	return file, nil
}
