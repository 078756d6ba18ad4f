package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/config"
	"ufmt/internal/trace"
)

// setupTracing merges trace flags over the config file values, initializes
// the tracer and attaches it to the command context.
func setupTracing(cmd *cobra.Command, tc config.TraceConfig) (func(), trace.Tracer, error) {
	flags := cmd.Root().PersistentFlags()

	override := func(name string, dst *string) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
		return nil
	}
	if err := override("trace", &tc.Output); err != nil {
		return nil, nil, err
	}
	if err := override("trace-level", &tc.Level); err != nil {
		return nil, nil, err
	}
	if err := override("trace-mode", &tc.Mode); err != nil {
		return nil, nil, err
	}
	if err := override("trace-format", &tc.Format); err != nil {
		return nil, nil, err
	}

	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := tc.HeartbeatInterval()
	if err != nil {
		return nil, nil, err
	}
	if flags.Changed("trace-heartbeat") {
		if heartbeatInterval, err = flags.GetDuration("trace-heartbeat"); err != nil {
			return nil, nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
		}
	}

	level, err := trace.ParseLevel(tc.Level)
	if err != nil {
		return nil, nil, err
	}

	// --trace without a level means command-level tracing
	if level == trace.LevelOff && flags.Changed("trace") {
		level = trace.LevelCommand
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, trace.Nop, nil
	}

	mode, err := trace.ParseMode(tc.Mode)
	if err != nil {
		return nil, nil, err
	}
	// error level only ever fills the ring
	if level == trace.LevelError {
		mode = trace.ModeRing
	}
	format, ok := trace.ParseFormat(tc.Format)
	if !ok {
		return nil, nil, fmt.Errorf("invalid trace format %q (expected auto|text|ndjson)", tc.Format)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: tc.Output,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)

	heartbeat := trace.StartHeartbeat(tracer, heartbeatInterval)

	cleanup := func() {
		heartbeat.Stop()
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, tracer, nil
}
