package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ufmt/internal/version"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ufmt",
		Short: "Fixed-buffer numeric formatting",
		Long: `ufmt renders integers and floats the way the embedded formatting engine does:
fixed decimal places, padding, and no heap allocation on the hot path.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
	}

	root.AddCommand(newIntCmd(a))
	root.AddCommand(newFloatCmd(a))
	root.AddCommand(newDebugCmd(a))
	root.AddCommand(newPrintCmd(a))
	root.AddCommand(newPackCmd(a))
	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newVersionCmd())

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: ufmt.toml/ufmt.yaml upwards, then $XDG_CONFIG_HOME/ufmt)")
	pf.String("color", "", "colorize output (auto|on|off)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "", "trace level (off|error|command|file|record)")
	pf.String("trace-mode", "", "trace storage (stream|ring|both)")
	pf.String("trace-format", "", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept for the failure dump")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")
	pf.Bool("timings", false, "show timing information")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
	pf.Int("fail-after", -1, "fail output after N writes (testing aid)")
	_ = pf.MarkHidden("fail-after")

	return root
}

// main builds the CLI and runs it. A failing command exits with status 1.
func main() {
	a := &app{}
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.finish(err, os.Stderr)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
