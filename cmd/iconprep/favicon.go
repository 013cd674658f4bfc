package main

import (
	"errors"
	"fmt"

	"github.com/section31nx/fluttericons-website/internal/pipeline"
	"github.com/spf13/cobra"
)

var faviconCmd = &cobra.Command{
	Use:   "favicon",
	Short: "Make white pixels transparent and export the favicon set",
	Args:  cobra.NoArgs,
	RunE:  runFavicon,
}

func init() {
	d := pipeline.DefaultFaviconOptions()
	faviconCmd.Flags().StringP("input", "i", d.Input, "Source image")
	faviconCmd.Flags().String("base", d.BasePath, "Full-size transparent PNG")
	faviconCmd.Flags().String("out-dir", d.OutDir, "Directory for the resized favicons")
	faviconCmd.Flags().String("flutter", d.FlutterPath, "Flutter web favicon path (empty to skip)")
	faviconCmd.Flags().String("ico", "", "Also write a favicon.ico here")
	faviconCmd.Flags().Int("ico-size", d.ICOSize, "Edge length of the .ico image (1-256)")
	faviconCmd.Flags().Uint8("threshold", d.WhiteMin, "Pixels with R, G and B all above this become transparent")
	faviconCmd.Flags().String("sizes", "", "Comma-separated sizes, e.g. 16,32,180x180 (default: standard favicon set)")
	rootCmd.AddCommand(faviconCmd)
}

func runFavicon(cmd *cobra.Command, args []string) error {
	opts := pipeline.DefaultFaviconOptions()
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.BasePath, _ = cmd.Flags().GetString("base")
	opts.OutDir, _ = cmd.Flags().GetString("out-dir")
	opts.FlutterPath, _ = cmd.Flags().GetString("flutter")
	opts.ICOPath, _ = cmd.Flags().GetString("ico")
	opts.ICOSize, _ = cmd.Flags().GetInt("ico-size")
	opts.WhiteMin, _ = cmd.Flags().GetUint8("threshold")

	if s, _ := cmd.Flags().GetString("sizes"); s != "" {
		sizes, err := pipeline.ParseSizes(s)
		if err != nil {
			return err
		}
		opts.Sizes = sizes
	}

	w := statusWriter(cmd)

	result, err := pipeline.RunFavicon(opts)
	if errors.Is(err, pipeline.ErrSourceMissing) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Error: source image not found at %s\n", opts.Input)
		fmt.Fprintln(out, "Please make sure the image file exists in the current directory.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("favicon: %w", err)
	}

	fmt.Fprintf(w, "Created transparent favicon: %s (%d of %d pixels keyed)\n",
		result.Base, result.Transparent, result.SrcWidth*result.SrcHeight)
	for _, o := range result.Sizes {
		fmt.Fprintf(w, "Created %s (%dx%d)\n", o.Path, o.Width, o.Height)
	}
	if result.Flutter != "" {
		fmt.Fprintf(w, "Created Flutter favicon: %s\n", result.Flutter)
	}
	if result.ICO != "" {
		fmt.Fprintf(w, "Created %s (%dx%d)\n", result.ICO, opts.ICOSize, opts.ICOSize)
	}
	fmt.Fprintln(w, "\nFavicon creation complete!")
	return nil
}
