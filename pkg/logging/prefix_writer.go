package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each line.
// Partial lines are held back until their newline arrives, so interleaved
// writers never split a prefixed line.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. Complete lines are emitted with the prefix;
// the trailing fragment waits for the next Write.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		nl := bytes.IndexByte(pw.pending, '\n')
		if nl < 0 {
			break
		}

		line := make([]byte, 0, len(pw.prefix)+nl+1)
		line = append(line, pw.prefix...)
		line = append(line, pw.pending[:nl+1]...)
		if _, err := pw.writer.Write(line); err != nil {
			return 0, err
		}
		pw.pending = pw.pending[nl+1:]
	}

	return len(p), nil
}
