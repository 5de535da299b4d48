// Package mock provides test doubles for chunkview interfaces.
package mock

import "github.com/fwojciec/chunkview"

// Compile-time interface verification.
var (
	_ chunkview.Sink         = (*Sink)(nil)
	_ chunkview.LockedWriter = (*LockedWriter)(nil)
)

// Sink is a mock implementation of chunkview.Sink.
type Sink struct {
	LockFn func() chunkview.LockedWriter
}

func (s *Sink) Lock() chunkview.LockedWriter {
	return s.LockFn()
}

// LockedWriter is a mock implementation of chunkview.LockedWriter.
type LockedWriter struct {
	WriteFn  func(p []byte) (int, error)
	FlushFn  func() error
	UnlockFn func()
}

func (w *LockedWriter) Write(p []byte) (int, error) {
	return w.WriteFn(p)
}

func (w *LockedWriter) Flush() error {
	return w.FlushFn()
}

func (w *LockedWriter) Unlock() {
	w.UnlockFn()
}
