package main

import (
	"github.com/spf13/cobra"

	"ufmt/internal/render"
	"ufmt/internal/uwrite"
)

func newPrintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <format> [type:value...]",
		Short: "Render a format string",
		Long: `Render a format string whose {} placeholders take typed arguments.

Placeholder syntax: {[:[[fill]align][width][.places][?]]}
  align   < left, > right, ^ center (a bare width right-aligns)
  places  decimal places for f32/f64, 0-6
  ?       debug rendering
Use {{ and }} for literal braces.`,
		Example: `  ufmt print '{:>8}|{:^9.2}|' i32:-42 f64:3.14159
  ufmt print 'id={:0>6} name={:<10}!' u16:42 str:probe`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]render.Displayer, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := parseTypedArg(arg)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			w := a.output(cmd)
			if err := uwrite.Fprint(w, args[0], values...); err != nil {
				return err
			}
			if noNewline, _ := cmd.Flags().GetBool("no-newline"); noNewline {
				return nil
			}
			return w.WriteChar('\n')
		},
	}
	cmd.Flags().BoolP("no-newline", "n", false, "do not print the trailing newline")
	return cmd
}
