package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.SyntaxDetector = (*Detector)(nil)

// extensionOverrides maps extensions whose chroma match is ambiguous or
// missing to a lexer name.
var extensionOverrides = map[string]string{
	".h":   "C++",
	".fs":  "FSharp",
	".pac": "JavaScript",
}

// Detector detects syntaxes from file names using chroma's lexer registry.
type Detector struct {
	fallback chunkview.SyntaxDetector
}

// NewDetector creates a new chroma-based syntax detector. When the file
// name matches no lexer, fallback is consulted if it is not nil.
func NewDetector(fallback chunkview.SyntaxDetector) *Detector {
	return &Detector{fallback: fallback}
}

// DetectSyntax returns the chroma lexer name for the file at path, or an
// empty string if the syntax cannot be determined.
func (d *Detector) DetectSyntax(path string, head []byte) string {
	if name, ok := extensionOverrides[filepath.Ext(path)]; ok {
		return name
	}

	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer.Config().Name
	}

	if d.fallback != nil {
		return d.fallback.DetectSyntax(path, head)
	}
	return ""
}
