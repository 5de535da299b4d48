// Package enry provides content-based syntax detection using go-enry.
package enry

import (
	"path/filepath"

	"github.com/fwojciec/chunkview"
	enrylib "github.com/go-enry/go-enry/v2"
)

// Compile-time interface verification.
var _ chunkview.SyntaxDetector = (*Detector)(nil)

// Detector detects syntaxes from shebangs, editor modelines and file
// contents. It returns Linguist language names, which chroma resolves
// through its lexer aliases.
type Detector struct{}

// NewDetector creates a new enry-based syntax detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectSyntax returns the language of the file at path, or an empty string
// if it cannot be determined. Binary content is never classified.
func (d *Detector) DetectSyntax(path string, head []byte) string {
	if enrylib.IsBinary(head) {
		return ""
	}
	if lang, safe := enrylib.GetLanguageByShebang(head); safe {
		return lang
	}
	if lang, safe := enrylib.GetLanguageByModeline(head); safe {
		return lang
	}
	return enrylib.GetLanguage(filepath.Base(path), head)
}
