package render

import (
	"unicode/utf8"

	"ufmt/internal/testkit"
)

// arraySink writes into a fixed array and never allocates.
type arraySink struct {
	buf [128]byte
	n   int
}

func (a *arraySink) WriteStr(s string) error {
	a.n += copy(a.buf[a.n:], s)
	return nil
}

func (a *arraySink) WriteChar(c rune) error {
	if a.n+utf8.RuneLen(c) > len(a.buf) {
		return testkit.ErrBroken
	}
	a.n += utf8.EncodeRune(a.buf[a.n:], c)
	return nil
}

func (a *arraySink) reset() { a.n = 0 }

func (a *arraySink) String() string { return string(a.buf[:a.n]) }

func renderWith(fn func(f *Formatter) error) (string, error) {
	var r testkit.Recorder
	err := fn(NewFormatter(&r))
	return r.String(), err
}
