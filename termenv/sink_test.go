package termenv_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/chunkview/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink(t *testing.T) {
	t.Parallel()

	t.Run("buffers writes until flushed", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		sink := termenv.NewSink(&out)

		w := sink.Lock()
		_, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Empty(t, out.String())

		require.NoError(t, w.Flush())
		w.Unlock()

		assert.Equal(t, "hello", out.String())
	})

	t.Run("keeps concurrent writers apart", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		sink := termenv.NewSink(&out)

		var wg sync.WaitGroup
		for _, s := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
			wg.Go(func() {
				w := sink.Lock()
				defer w.Unlock()
				for _, r := range s {
					_, _ = w.Write([]byte(string(r)))
				}
				_ = w.Flush()
			})
		}
		wg.Wait()

		got := out.String()
		assert.Len(t, got, 16)
		for _, s := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
			assert.True(t, strings.Contains(got, s), "%s is interleaved in %s", s, got)
		}
	})
}
