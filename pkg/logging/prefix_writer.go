package logging

import (
	"bytes"
	"io"
)

// PrefixWriter prepends a prefix to every full line written through it.
// Incomplete lines are buffered until their newline arrives.
type PrefixWriter struct {
	prefix []byte
	w      io.Writer
	buf    bytes.Buffer
}

// NewPrefixWriter wraps w so each line comes out prefixed.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), w: w}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.buf.Write(p)

	for {
		i := bytes.IndexByte(pw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := pw.buf.Next(i + 1)
		if _, err := pw.w.Write(pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.w.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
