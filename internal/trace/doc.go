// Package trace records what ufmt commands do: command, file and record
// spans written as text or NDJSON, or kept in a ring buffer that is dumped
// when a command fails.
//
// Enable tracing via command-line flags:
//
//	ufmt dump --trace=- --trace-level=file readings/*.ufr
//
// Levels: off, error (ring only), command, file, record.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopeFile, "file:"+path)
//	defer span.End("")
package trace
