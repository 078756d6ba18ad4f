// Package sink provides render.Writer implementations: a fixed-capacity
// Buffer, a Stream over any io.Writer, a mutex-guarded Locked wrapper for
// sinks shared between goroutines, and Limited for fault injection.
package sink
