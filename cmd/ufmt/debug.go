package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/render"
)

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug <type> <value>",
		Short: "Show the debug rendering of a value",
		Long:  "Debug output equals display output for numbers; floats use 3 decimal places.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0], args[1])
			if err != nil {
				return err
			}
			d, ok := v.(render.Debugger)
			if !ok {
				return fmt.Errorf("type %s has no debug rendering", args[0])
			}
			w := a.output(cmd)
			if err := render.Debug(w, d); err != nil {
				return err
			}
			return w.WriteChar('\n')
		},
	}
}
