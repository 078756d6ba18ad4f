package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ufmt/internal/config"
	"ufmt/internal/prof"
	"ufmt/internal/render"
	"ufmt/internal/sink"
	"ufmt/internal/trace"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfg     config.Config
	cfgPath string
	tracer  trace.Tracer
	span    *trace.Span
	cleanup func()
	prof    *prof.Session
}

// prepare loads the config, applies global flags and starts tracing.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, path, err := config.Resolve(explicit, ".")
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	if flags.Changed("color") {
		a.cfg.Color, _ = flags.GetString("color")
	}
	if err := applyColor(a.cfg.Color, os.Stdout); err != nil {
		return err
	}

	if a.prof, err = setupProfiling(cmd); err != nil {
		return err
	}

	cleanup, tracer, err := setupTracing(cmd, a.cfg.Trace)
	if err != nil {
		return err
	}
	a.cleanup, a.tracer = cleanup, tracer

	span, ctx := trace.Start(cmd.Context(), trace.ScopeCommand, cmd.CommandPath())
	if a.cfgPath != "" {
		span.WithExtra("config", a.cfgPath)
	}
	a.span = span
	cmd.SetContext(ctx)
	return nil
}

// finish dumps the failure ring when the command failed, then releases the
// tracer.
func (a *app) finish(err error, stderr io.Writer) {
	if a.span != nil {
		detail := "ok"
		if err != nil {
			detail = err.Error()
		}
		a.span.End(detail)
	}
	if err != nil && a.tracer != nil {
		if ring, ok := trace.Ring(a.tracer); ok {
			fmt.Fprintln(stderr, "trace: events before failure:")
			if dumpErr := ring.Dump(stderr, trace.FormatText); dumpErr != nil {
				fmt.Fprintf(stderr, "trace: dump error: %v\n", dumpErr)
			}
		}
	}
	if a.cleanup != nil {
		a.cleanup()
	}
	if err := a.prof.Stop(); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
	}
}

// setupProfiling starts the profilers named by the persistent flags.
func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	for name, dst := range map[string]*string{
		"cpu-profile":   &opts.CPU,
		"mem-profile":   &opts.Mem,
		"runtime-trace": &opts.Trace,
	} {
		v, err := flags.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	if opts == (prof.Options{}) {
		return nil, nil
	}
	return prof.Start(opts)
}

func applyColor(mode string, stdout *os.File) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "", "auto":
		color.NoColor = !isTerminal(stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// output returns the sink commands render into.
func (a *app) output(cmd *cobra.Command) render.Writer {
	var w render.Writer = sink.NewStream(cmd.OutOrStdout())
	if n, err := cmd.Root().PersistentFlags().GetInt("fail-after"); err == nil && n >= 0 {
		w = sink.NewLimited(w, n)
	}
	return w
}
