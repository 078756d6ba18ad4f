package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/render"
)

func newFloatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "float <value>",
		Short: "Render a float with fixed decimal places",
		Long: `Render a float with 0 to 6 decimal places, rounding half up on the
binary value. NaN prints as NaN; magnitudes beyond the integer range of the
type (2^23 for f32, 2^32-1 for f64) print as ovfl or -ovfl.`,
		Example: `  ufmt float 3.14159 --places 2
  ufmt float --places 3 -- -0.0004
  ufmt float 1.5 --type f32 --places 2 --width 8 --align left --fill _`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := cmd.Flags().GetString("type")
			if err != nil {
				return err
			}
			if typ != "f32" && typ != "f64" {
				return fmt.Errorf("--type %q is not a float type (f32|f64)", typ)
			}
			v, err := parseValue(typ, args[0])
			if err != nil {
				return err
			}
			places, err := placesFromFlags(cmd, a.cfg.Render)
			if err != nil {
				return err
			}
			pad, fill, err := fieldFromFlags(cmd, a.cfg.Render)
			if err != nil {
				return err
			}
			f := render.NewFormatter(a.output(cmd))
			if err := v.(render.FloatDisplayer).FmtFloat(f, places, pad, fill); err != nil {
				return err
			}
			return f.WriteChar('\n')
		},
	}
	cmd.Flags().String("type", "f64", "float type (f32|f64)")
	addPlacesFlag(cmd)
	addFieldFlags(cmd)
	return cmd
}
