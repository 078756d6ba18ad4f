package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufmt/internal/config"
	"ufmt/internal/render"
)

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "minimum field width in characters")
	cmd.Flags().String("align", "", "alignment (left|right|usual|center)")
	cmd.Flags().String("fill", "", "fill character")
}

func addPlacesFlag(cmd *cobra.Command) {
	cmd.Flags().Int("places", 0, "decimal places (0-6)")
}

// fieldFromFlags starts from the config's render section and applies any
// field flags the user set.
func fieldFromFlags(cmd *cobra.Command, rc config.RenderConfig) (render.Padding, rune, error) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		rc.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("align") {
		rc.Align, _ = flags.GetString("align")
	}
	if flags.Changed("fill") {
		rc.Fill, _ = flags.GetString("fill")
	}
	pad, err := rc.Padding()
	if err != nil {
		return render.Padding{}, 0, err
	}
	fill, err := rc.FillRune()
	if err != nil {
		return render.Padding{}, 0, err
	}
	return pad, fill, nil
}

func placesFromFlags(cmd *cobra.Command, rc config.RenderConfig) (render.Places, error) {
	if cmd.Flags().Changed("places") {
		rc.Places, _ = cmd.Flags().GetInt("places")
	}
	places, err := rc.PlacesValue()
	if err != nil {
		return 0, fmt.Errorf("--places: %w", err)
	}
	return places, nil
}
