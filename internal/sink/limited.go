package sink

import (
	"errors"

	"ufmt/internal/render"
)

// ErrLimit is returned by Limited once its write budget is spent.
var ErrLimit = errors.New("sink: write limit reached")

// Limited forwards a fixed number of writes and fails every write after
// that. It exists to exercise fail-fast paths.
type Limited struct {
	w    render.Writer
	left int
}

// NewLimited allows n writes to w.
func NewLimited(w render.Writer, n int) *Limited {
	return &Limited{w: w, left: n}
}

func (l *Limited) WriteStr(s string) error {
	if l.left <= 0 {
		return ErrLimit
	}
	l.left--
	return l.w.WriteStr(s)
}

func (l *Limited) WriteChar(c rune) error {
	if l.left <= 0 {
		return ErrLimit
	}
	l.left--
	return l.w.WriteChar(c)
}

// Remaining returns how many writes are still allowed.
func (l *Limited) Remaining() int { return max(l.left, 0) }
