package sink

import (
	"io"
	"unicode/utf8"
)

// Stream adapts an io.Writer such as os.Stdout or an open serial device.
// Short writes are reported as io.ErrShortWrite.
type Stream struct {
	w       io.Writer
	written int64
}

// NewStream wraps w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// WriteStr writes s in one call to the underlying writer.
func (s *Stream) WriteStr(str string) error {
	n, err := io.WriteString(s.w, str)
	s.written += int64(n)
	if err == nil && n < len(str) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteChar writes the UTF-8 encoding of c.
func (s *Stream) WriteChar(c rune) error {
	var b [utf8.UTFMax]byte
	size := utf8.EncodeRune(b[:], c)
	n, err := s.w.Write(b[:size])
	s.written += int64(n)
	if err == nil && n < size {
		err = io.ErrShortWrite
	}
	return err
}

// Written returns the total number of bytes accepted by the writer.
func (s *Stream) Written() int64 { return s.written }
