package chunkview

import (
	"bytes"
	"iter"
	"strings"
	"unicode/utf8"
)

// Lines yields the lines of buf with their 1-based line numbers. Each line
// keeps its trailing newline; only the last line may lack one. The yielded
// slices alias buf.
func Lines(buf []byte) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		lnum := 1
		for len(buf) > 0 {
			end := len(buf)
			if i := bytes.IndexByte(buf, '\n'); i >= 0 {
				end = i + 1
			}
			if !yield(lnum, buf[:end]) {
				return
			}
			buf = buf[end:]
			lnum++
		}
	}
}

// LineCount returns the number of lines Lines yields for buf.
func LineCount(buf []byte) int {
	n := bytes.Count(buf, []byte{'\n'})
	if len(buf) > 0 && buf[len(buf)-1] != '\n' {
		n++
	}
	return n
}

// DecodeLossy converts b to a string, replacing each byte that is not part
// of a valid UTF-8 sequence with U+FFFD.
func DecodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// TrimNewline removes a trailing "\n" and a "\r" before it.
func TrimNewline(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}
