package mock

import "github.com/fwojciec/chunkview"

// Compile-time interface verification.
var _ chunkview.ThemeSet = (*ThemeSet)(nil)

// ThemeSet is a mock implementation of chunkview.ThemeSet.
type ThemeSet struct {
	NamesFn func() []string
	ThemeFn func(name string) (*chunkview.Theme, bool)
}

func (s *ThemeSet) Names() []string {
	return s.NamesFn()
}

func (s *ThemeSet) Theme(name string) (*chunkview.Theme, bool) {
	return s.ThemeFn(name)
}
