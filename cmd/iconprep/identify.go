package main

import (
	"fmt"
	"os"

	"github.com/section31nx/fluttericons-website/internal/color"
	"github.com/section31nx/fluttericons-website/internal/imgio"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image and count pixels each keying rule would affect",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Uint8("threshold", color.DefaultWhiteMin, "White threshold to evaluate")
	identifyCmd.Flags().String("color", color.DefaultKeyTarget.String(), "Key color to evaluate, as r,g,b or #rrggbb")
	identifyCmd.Flags().Uint8("tolerance", color.DefaultTolerance, "Key color tolerance to evaluate")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	threshold, _ := cmd.Flags().GetUint8("threshold")
	tolerance, _ := cmd.Flags().GetUint8("tolerance")
	colorStr, _ := cmd.Flags().GetString("color")

	target, err := color.ParseRGB(colorStr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imgio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	img, err := imgio.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	total := info.Width * info.Height
	white := color.WhiteThreshold{Min: threshold}
	key := color.KeyColor{Target: target, Tolerance: tolerance}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Format:      %s\n", info.Format)
	fmt.Fprintf(w, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(w, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(w, "File size:   %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	fmt.Fprintf(w, "Transparent: %d / %d pixels\n", color.Transparent(img), total)
	fmt.Fprintf(w, "Match %-14s %d pixels\n", white.String()+":", color.Count(img, white))
	fmt.Fprintf(w, "Match %-14s %d pixels\n", key.String()+":", color.Count(img, key))
	return nil
}
