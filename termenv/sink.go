package termenv

import (
	"bufio"
	"io"
	"sync"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.Sink = (*Sink)(nil)

// Sink serializes buffered writes to an underlying writer.
type Sink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewSink wraps w in a lockable, buffered sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// Lock blocks until the sink is free and returns exclusive access to it.
// The caller must call Unlock on the result.
func (s *Sink) Lock() chunkview.LockedWriter {
	s.mu.Lock()
	return &lockedSink{s: s}
}

type lockedSink struct {
	s *Sink
}

func (l *lockedSink) Write(p []byte) (int, error) {
	return l.s.w.Write(p)
}

func (l *lockedSink) Flush() error {
	return l.s.w.Flush()
}

func (l *lockedSink) Unlock() {
	l.s.mu.Unlock()
}
