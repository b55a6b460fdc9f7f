package backend

import (
	"bufio"
	"io"
)

// lineReader only ever yields entire newline-terminated lines. Data after the
// last newline is held back as pending and prepended to the next complete
// line, so the CSV parser never sees half a record while a source is still
// growing.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	line    []byte
}

var _ io.Reader = (*lineReader)(nil)

func NewLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

// Pending returns the bytes read from the source that are not yet part of a
// complete line.
func (l *lineReader) Pending() []byte {
	return l.pending
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.line) == 0 {
		data, err := l.r.ReadBytes('\n')
		if err != nil {
			l.pending = append(l.pending, data...)
			return 0, err
		}
		if len(l.pending) > 0 {
			data = append(l.pending, data...)
			l.pending = nil
		}
		l.line = data
	}
	n := copy(b, l.line)
	l.line = l.line[n:]
	return n, nil
}
