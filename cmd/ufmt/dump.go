package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/dump"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <files...>",
		Short: "Render record files through a template",
		Long: `Render every reading of the given record files. Templates take two
arguments, the sensor name and the value. Files are rendered in parallel and
printed in the order given.`,
		Example: `  ufmt dump today.ufr
  ufmt dump *.ufr --template '{:<12} {:>20}' --float-template '{:<12} {:>20.2}' --jobs 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc := a.cfg.Dump
			flags := cmd.Flags()
			if flags.Changed("template") {
				dc.Template, _ = flags.GetString("template")
			}
			if flags.Changed("float-template") {
				dc.FloatTemplate, _ = flags.GetString("float-template")
			}
			if flags.Changed("jobs") {
				dc.Jobs, _ = flags.GetInt("jobs")
			}
			if flags.Changed("ui") {
				dc.UI, _ = flags.GetString("ui")
			}
			header, _ := flags.GetBool("header")
			timings, err := cmd.Root().PersistentFlags().GetBool("timings")
			if err != nil {
				return fmt.Errorf("failed to get timings flag: %w", err)
			}
			mode, err := readUIMode(dc.UI)
			if err != nil {
				return err
			}

			opts := dump.Options{
				Template:      dc.Template,
				FloatTemplate: dc.FloatTemplate,
				Jobs:          dc.Jobs,
				Timings:       timings,
			}
			var results []dump.Result
			if shouldUseTUI(mode) {
				results, err = runDumpWithUI(cmd.Context(), "ufmt dump", args, opts)
			} else {
				results, err = dump.Run(cmd.Context(), args, opts)
			}
			if err != nil {
				return err
			}
			writeErr := dump.WriteResults(cmd.OutOrStdout(), results, header || len(args) > 1)
			if timings {
				if err := dump.WriteTimings(cmd.ErrOrStderr(), results); err != nil && writeErr == nil {
					writeErr = err
				}
			}
			return writeErr
		},
	}
	cmd.Flags().String("template", "", "template for integer readings (default from config)")
	cmd.Flags().String("float-template", "", "template for f32/f64 readings (default: --template)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ui", "", "progress UI (auto|on|off)")
	cmd.Flags().Bool("header", false, "print a header line per file even for a single file")
	return cmd
}
