package render

import (
	"unicode/utf8"
	"unsafe"
)

const (
	// intBufLen holds the longest 128-bit value: 39 digits and a sign.
	intBufLen = 40
	// fixedBufLen holds a sign, 10 integral digits, '.', and 6 fractional digits.
	fixedBufLen = 18
)

// Formatter binds a Writer for the duration of a rendering call and owns the
// scratch buffers digits are assembled in. It is not safe for concurrent use;
// give each goroutine its own Formatter, or serialise a shared Writer.
type Formatter struct {
	w     Writer
	ints  [intBufLen]byte
	fixed [fixedBufLen]byte
}

// NewFormatter returns a Formatter writing to w.
func NewFormatter(w Writer) *Formatter {
	return &Formatter{w: w}
}

// Reset rebinds the Formatter to w so it can be reused without allocating.
func (f *Formatter) Reset(w Writer) {
	f.w = w
}

// WriteStr forwards s to the Writer.
func (f *Formatter) WriteStr(s string) error {
	return f.w.WriteStr(s)
}

// WriteChar forwards c to the Writer.
func (f *Formatter) WriteChar(c rune) error {
	return f.w.WriteChar(c)
}

// Pad writes s with fill characters placed according to p. Width is counted
// in runes. The first Writer error stops the output and is returned unchanged.
func (f *Formatter) Pad(s string, p Padding, fill rune) error {
	before, after := p.fills(utf8.RuneCountInString(s))
	if err := f.repeat(fill, before); err != nil {
		return err
	}
	if err := f.w.WriteStr(s); err != nil {
		return err
	}
	return f.repeat(fill, after)
}

func (f *Formatter) repeat(c rune, n int) error {
	for range n {
		if err := f.w.WriteChar(c); err != nil {
			return err
		}
	}
	return nil
}

// emit pads a slice of one of the scratch buffers. The bytes are ASCII and
// stay untouched until the Writer returns, so the string can alias them.
func (f *Formatter) emit(b []byte, p Padding, fill rune) error {
	return f.Pad(unsafe.String(unsafe.SliceData(b), len(b)), p, fill) //nolint:gosec // G103: b is a live scratch slice, see Writer.
}
