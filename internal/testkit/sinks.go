// Package testkit holds sinks and invariant checks shared by the tests of
// the rendering packages.
package testkit

import (
	"errors"
	"strings"
)

// Recorder collects everything written and counts the calls.
type Recorder struct {
	sb    strings.Builder
	Strs  int
	Chars int
}

func (r *Recorder) WriteStr(s string) error {
	r.Strs++
	r.sb.WriteString(s)
	return nil
}

func (r *Recorder) WriteChar(c rune) error {
	r.Chars++
	r.sb.WriteRune(c)
	return nil
}

func (r *Recorder) String() string { return r.sb.String() }

// Reset drops the recorded text and keeps the counters.
func (r *Recorder) Reset() { r.sb.Reset() }

// Len returns the number of bytes recorded.
func (r *Recorder) Len() int { return r.sb.Len() }

// ErrBroken is returned by FailAfter once its budget is spent.
var ErrBroken = errors.New("sink broken")

// FailAfter accepts N writes and then fails every call.
type FailAfter struct {
	Recorder
	N int
}

func (w *FailAfter) WriteStr(s string) error {
	if w.N <= 0 {
		return ErrBroken
	}
	w.N--
	return w.Recorder.WriteStr(s)
}

func (w *FailAfter) WriteChar(c rune) error {
	if w.N <= 0 {
		return ErrBroken
	}
	w.N--
	return w.Recorder.WriteChar(c)
}
