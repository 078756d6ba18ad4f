package sink

import (
	"errors"
	"unicode/utf8"
)

// ErrFull is returned when a Buffer has no room for a write. Nothing of the
// rejected write is stored.
var ErrFull = errors.New("sink: buffer full")

// Buffer collects output in caller-provided storage and never grows.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer returns a Buffer writing into storage.
func NewBuffer(storage []byte) *Buffer {
	return &Buffer{buf: storage}
}

// WriteStr appends s if it fits entirely.
func (b *Buffer) WriteStr(s string) error {
	if len(s) > len(b.buf)-b.n {
		return ErrFull
	}
	b.n += copy(b.buf[b.n:], s)
	return nil
}

// WriteChar appends the UTF-8 encoding of c. Invalid runes are stored as
// utf8.RuneError.
func (b *Buffer) WriteChar(c rune) error {
	size := utf8.RuneLen(c)
	if size < 0 {
		c, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	if size > len(b.buf)-b.n {
		return ErrFull
	}
	b.n += utf8.EncodeRune(b.buf[b.n:], c)
	return nil
}

// Bytes returns the collected output. It aliases the storage.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// String returns a copy of the collected output.
func (b *Buffer) String() string { return string(b.buf[:b.n]) }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.n }

// Available returns the remaining capacity in bytes.
func (b *Buffer) Available() int { return len(b.buf) - b.n }

// Reset discards the collected output and keeps the storage.
func (b *Buffer) Reset() { b.n = 0 }
