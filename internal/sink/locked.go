package sink

import (
	"sync"

	"ufmt/internal/render"
)

// Locked serialises access to a Writer shared between goroutines. Single
// writes are atomic; use Do to keep a whole rendering together.
type Locked struct {
	mu sync.Mutex
	w  render.Writer
}

// NewLocked wraps w.
func NewLocked(w render.Writer) *Locked {
	return &Locked{w: w}
}

// WriteStr writes s while holding the lock.
func (l *Locked) WriteStr(s string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.WriteStr(s)
}

// WriteChar writes c while holding the lock.
func (l *Locked) WriteChar(c rune) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.WriteChar(c)
}

// Do runs fn with exclusive access to the wrapped Writer. fn must not call
// back into l.
func (l *Locked) Do(fn func(w render.Writer) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.w)
}
