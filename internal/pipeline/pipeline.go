package pipeline

import (
	"errors"
	"fmt"

	"github.com/section31nx/fluttericons-website/internal/color"
	"github.com/section31nx/fluttericons-website/internal/imgio"
)

// ErrSourceMissing is returned before any output is written when the input
// image does not exist.
var ErrSourceMissing = errors.New("source image not found")

// FaviconOptions controls the white-to-transparent favicon pipeline.
type FaviconOptions struct {
	Input       string // source image
	BasePath    string // full-size transparent PNG
	OutDir      string // directory for the resized set
	FlutterPath string // copy of the base image for the Flutter web app; empty to skip
	ICOPath     string // optional favicon.ico; empty to skip
	ICOSize     int
	WhiteMin    uint8 // R, G and B must all exceed this to be keyed out
	Sizes       []Size
}

// DefaultFaviconOptions returns the paths and threshold of the website build.
func DefaultFaviconOptions() FaviconOptions {
	return FaviconOptions{
		Input:       "lightning-bolt-icon.png",
		BasePath:    "lightning-favicon.png",
		OutDir:      "website/assets",
		FlutterPath: "app_flutter/web/favicon.png",
		ICOSize:     48,
		WhiteMin:    color.DefaultWhiteMin,
		Sizes:       DefaultSizes,
	}
}

// FaviconResult holds the output of a favicon pipeline run.
type FaviconResult struct {
	SrcWidth    int
	SrcHeight   int
	Transparent int // pixels keyed out
	Base        string
	Sizes       []Output
	Flutter     string
	ICO         string
}

// RunFavicon executes: existence check → key out white → save base →
// multi-size export → Flutter copy → optional ICO.
func RunFavicon(opts FaviconOptions) (*FaviconResult, error) {
	// 1. Guard against a missing source before touching the filesystem
	ok, err := imgio.Exists(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", opts.Input, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, opts.Input)
	}

	src, err := imgio.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Key out white
	keyed, n := color.Apply(src, color.WhiteThreshold{Min: opts.WhiteMin})

	result := &FaviconResult{
		SrcWidth:    src.Rect.Dx(),
		SrcHeight:   src.Rect.Dy(),
		Transparent: n,
	}

	// 3. Base image
	if err := imgio.SavePNG(opts.BasePath, keyed); err != nil {
		return nil, fmt.Errorf("base image: %w", err)
	}
	result.Base = opts.BasePath

	// 4. Resized set
	sizes := opts.Sizes
	if sizes == nil {
		sizes = DefaultSizes
	}
	result.Sizes, err = Export(keyed, opts.OutDir, sizes)
	if err != nil {
		return nil, err
	}

	// 5. Flutter web favicon
	if opts.FlutterPath != "" {
		if err := imgio.SavePNG(opts.FlutterPath, keyed); err != nil {
			return nil, fmt.Errorf("flutter favicon: %w", err)
		}
		result.Flutter = opts.FlutterPath
	}

	// 6. ICO
	if opts.ICOPath != "" {
		if err := imgio.SaveICO(opts.ICOPath, keyed, opts.ICOSize); err != nil {
			return nil, fmt.Errorf("ico: %w", err)
		}
		result.ICO = opts.ICOPath
	}

	return result, nil
}

// KeyColorOptions controls the single-color keying pipeline.
type KeyColorOptions struct {
	Input     string
	Output    string // defaults to Input: the file is overwritten
	Target    color.RGB
	Tolerance uint8
}

// DefaultKeyColorOptions returns the detective icon path and its
// background color.
func DefaultKeyColorOptions() KeyColorOptions {
	return KeyColorOptions{
		Input:     "app_flutter/lib/images/bloodhound-detective-icon.png",
		Target:    color.DefaultKeyTarget,
		Tolerance: color.DefaultTolerance,
	}
}

// KeyColorResult holds the output of a key-color pipeline run.
type KeyColorResult struct {
	Output      string
	Width       int
	Height      int
	Transparent int
}

// RunKeyColor replaces every pixel near opts.Target with transparent white
// and writes the result, by default over the input. There is no backup.
func RunKeyColor(opts KeyColorOptions) (*KeyColorResult, error) {
	ok, err := imgio.Exists(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", opts.Input, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, opts.Input)
	}

	src, err := imgio.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	keyed, n := color.Apply(src, color.KeyColor{Target: opts.Target, Tolerance: opts.Tolerance})

	out := opts.Output
	if out == "" {
		out = opts.Input
	}
	if err := imgio.SavePNG(out, keyed); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &KeyColorResult{
		Output:      out,
		Width:       keyed.Rect.Dx(),
		Height:      keyed.Rect.Dy(),
		Transparent: n,
	}, nil
}
