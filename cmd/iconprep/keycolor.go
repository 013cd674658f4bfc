package main

import (
	"errors"
	"fmt"

	"github.com/section31nx/fluttericons-website/internal/color"
	"github.com/section31nx/fluttericons-website/internal/pipeline"
	"github.com/spf13/cobra"
)

var keycolorCmd = &cobra.Command{
	Use:   "keycolor",
	Short: "Make one background color transparent (overwrites the input by default)",
	Args:  cobra.NoArgs,
	RunE:  runKeyColor,
}

func init() {
	d := pipeline.DefaultKeyColorOptions()
	keycolorCmd.Flags().StringP("input", "i", d.Input, "Image to process")
	keycolorCmd.Flags().StringP("output", "o", "", "Output PNG (default: overwrite input)")
	keycolorCmd.Flags().String("color", d.Target.String(), "Color to remove, as r,g,b or #rrggbb")
	keycolorCmd.Flags().Uint8("tolerance", d.Tolerance, "Maximum per-channel distance from the color")
	rootCmd.AddCommand(keycolorCmd)
}

func runKeyColor(cmd *cobra.Command, args []string) error {
	opts := pipeline.DefaultKeyColorOptions()
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Tolerance, _ = cmd.Flags().GetUint8("tolerance")
	colorStr, _ := cmd.Flags().GetString("color")

	target, err := color.ParseRGB(colorStr)
	if err != nil {
		return err
	}
	opts.Target = target

	result, err := pipeline.RunKeyColor(opts)
	if errors.Is(err, pipeline.ErrSourceMissing) {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: image not found at %s\n", opts.Input)
		return nil
	}
	if err != nil {
		return fmt.Errorf("keycolor: %w", err)
	}

	w := statusWriter(cmd)
	fmt.Fprintf(w, "Keyed %s: %d pixels made transparent in %dx%d image\n",
		color.KeyColor{Target: opts.Target, Tolerance: opts.Tolerance}, result.Transparent, result.Width, result.Height)
	fmt.Fprintf(w, "Image processed successfully! Background made transparent: %s\n", result.Output)
	return nil
}
