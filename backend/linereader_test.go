package backend

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func expectToRead(t *testing.T, reader io.Reader, expected []byte) {
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if err != nil {
		t.Errorf("expected read to succeed, got: %v", err)
	} else if !bytes.Equal(scratch[:n], expected) {
		t.Errorf("expected read to yield %q, got: %q", expected, scratch[:n])
	}
}

func expectReadEOF(t *testing.T, reader io.Reader) {
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected read to give EOF, got: %v", err)
	} else if n != 0 {
		t.Errorf("expected read to read nothing, read %q", scratch[:n])
	}
}

func TestLineReader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("M, 6\n")
	buf.WriteString("T, 2\n")
	l := NewLineReader(buf)
	expectToRead(t, l, []byte("M, 6\n"))
	expectToRead(t, l, []byte("T, 2\n"))
	buf.WriteString("W, ")
	expectReadEOF(t, l)
	if string(l.Pending()) != "W, " {
		t.Errorf("expected pending %q, got %q", "W, ", l.Pending())
	}
	buf.WriteString("5\n")
	expectToRead(t, l, []byte("W, 5\n"))
	if len(l.Pending()) != 0 {
		t.Errorf("expected no pending bytes, got %q", l.Pending())
	}
	buf.WriteString("T")
	expectReadEOF(t, l)
	buf.WriteString(", ")
	expectReadEOF(t, l)
	buf.WriteString("6\nF")
	expectToRead(t, l, []byte("T, 6\n"))
	expectReadEOF(t, l)
}

func TestLineReaderShortBuffer(t *testing.T) {
	l := NewLineReader(bytes.NewBufferString("label, 10, 12\n"))
	var out []byte
	scratch := make([]byte, 4)
	for {
		n, err := l.Read(scratch)
		out = append(out, scratch[:n]...)
		if err != nil {
			break
		}
	}
	if string(out) != "label, 10, 12\n" {
		t.Errorf("expected the whole line across short reads, got %q", out)
	}
}
