package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/render"
)

func newIntCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "int <value>",
		Short: "Render an integer in a padded field",
		Example: `  ufmt int --type i8 --width 6 -- -42
  ufmt int 255 --type u8 --align center --width 7 --fill '*'
  ufmt int -170141183460469231731687303715884105728 --type i128`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := cmd.Flags().GetString("type")
			if err != nil {
				return err
			}
			if !isIntType(typ) {
				return fmt.Errorf("--type %q is not an integer type", typ)
			}
			return a.renderField(cmd, typ, args[0])
		},
	}
	cmd.Flags().String("type", "i64", "integer type (i8..i128, isize, u8..u128, usize)")
	addFieldFlags(cmd)
	return cmd
}

// renderField writes one padded value followed by a newline.
func (a *app) renderField(cmd *cobra.Command, typ, text string) error {
	v, err := parseValue(typ, text)
	if err != nil {
		return err
	}
	pad, fill, err := fieldFromFlags(cmd, a.cfg.Render)
	if err != nil {
		return err
	}
	f := render.NewFormatter(a.output(cmd))
	if err := v.FmtPadded(f, pad, fill); err != nil {
		return err
	}
	return f.WriteChar('\n')
}
