package main

import (
	"fmt"

	"github.com/section31nx/fluttericons-website/internal/imgio"
	"github.com/section31nx/fluttericons-website/internal/pipeline"
	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Export the favicon size set from an already-transparent image",
	Args:  cobra.NoArgs,
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Source image")
	resizeCmd.Flags().String("out-dir", "", "Output directory (created if absent)")
	resizeCmd.Flags().String("sizes", "", "Comma-separated sizes, e.g. 16,32,180x180 (default: standard favicon set)")
	resizeCmd.MarkFlagRequired("input")
	resizeCmd.MarkFlagRequired("out-dir")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("out-dir")
	sizesStr, _ := cmd.Flags().GetString("sizes")

	sizes := pipeline.DefaultSizes
	if sizesStr != "" {
		var err error
		sizes, err = pipeline.ParseSizes(sizesStr)
		if err != nil {
			return err
		}
	}

	img, err := imgio.Load(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	outputs, err := pipeline.Export(img, outDir, sizes)
	if err != nil {
		return err
	}

	w := statusWriter(cmd)
	for _, o := range outputs {
		fmt.Fprintf(w, "Created %s (%dx%d)\n", o.Path, o.Width, o.Height)
	}
	return nil
}
