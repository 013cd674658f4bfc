package pipeline

import (
	"errors"
	"image"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/section31nx/fluttericons-website/internal/color"
	"github.com/section31nx/fluttericons-website/internal/imgio"
)

// boltImage is a white canvas with a dark diagonal bar.
func boltImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := stdcolor.NRGBA{255, 255, 255, 255}
			if d := x - y; d > -3 && d < 3 {
				c = stdcolor.NRGBA{250, 200, 10, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeSource(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := imgio.SavePNG(path, img); err != nil {
		t.Fatalf("writing source: %v", err)
	}
}

func loadOutput(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imgio.Load(path)
	if err != nil {
		t.Fatalf("loading %s: %v", path, err)
	}
	return img
}

func faviconOptions(dir string) FaviconOptions {
	opts := DefaultFaviconOptions()
	opts.Input = filepath.Join(dir, "lightning-bolt-icon.png")
	opts.BasePath = filepath.Join(dir, "lightning-favicon.png")
	opts.OutDir = filepath.Join(dir, "website", "assets")
	opts.FlutterPath = filepath.Join(dir, "app_flutter", "web", "favicon.png")
	return opts
}

func TestRunFavicon(t *testing.T) {
	dir := t.TempDir()
	opts := faviconOptions(dir)
	opts.ICOPath = filepath.Join(dir, "website", "favicon.ico")
	writeSource(t, opts.Input, boltImage(64, 64))

	result, err := RunFavicon(opts)
	if err != nil {
		t.Fatalf("RunFavicon: %v", err)
	}

	if result.SrcWidth != 64 || result.SrcHeight != 64 {
		t.Errorf("source dimensions %dx%d", result.SrcWidth, result.SrcHeight)
	}
	if result.Transparent == 0 || result.Transparent >= 64*64 {
		t.Errorf("transparent pixel count %d looks wrong", result.Transparent)
	}

	base := loadOutput(t, opts.BasePath)
	if got := base.NRGBAAt(0, 63); got != (stdcolor.NRGBA{255, 255, 255, 0}) {
		t.Errorf("white corner = %v, want (255,255,255,0)", got)
	}
	if got := base.NRGBAAt(10, 10); got != (stdcolor.NRGBA{250, 200, 10, 255}) {
		t.Errorf("bolt pixel = %v, want unchanged", got)
	}

	if len(result.Sizes) != len(DefaultSizes) {
		t.Fatalf("wrote %d sizes, want %d", len(result.Sizes), len(DefaultSizes))
	}
	for i, s := range DefaultSizes {
		out := result.Sizes[i]
		if out.Path != filepath.Join(opts.OutDir, s.Name) {
			t.Errorf("size %d path %s", i, out.Path)
		}
		img := loadOutput(t, out.Path)
		if img.Bounds().Dx() != s.Width || img.Bounds().Dy() != s.Height {
			t.Errorf("%s is %dx%d, want %dx%d", s.Name, img.Bounds().Dx(), img.Bounds().Dy(), s.Width, s.Height)
		}
	}

	flutter := loadOutput(t, opts.FlutterPath)
	if flutter.Bounds() != base.Bounds() {
		t.Errorf("flutter favicon bounds %v, want %v", flutter.Bounds(), base.Bounds())
	}

	if fi, err := os.Stat(opts.ICOPath); err != nil || fi.Size() == 0 {
		t.Errorf("ico not written: %v", err)
	}
	t.Logf("keyed %d pixels, wrote %d sizes", result.Transparent, len(result.Sizes))
}

func TestRunFaviconMissingSource(t *testing.T) {
	dir := t.TempDir()
	opts := faviconOptions(dir)

	_, err := RunFavicon(opts)
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("error = %v, want ErrSourceMissing", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no outputs, found %d entries", len(entries))
	}
}

func TestRunFaviconUndecodable(t *testing.T) {
	dir := t.TempDir()
	opts := faviconOptions(dir)
	if err := os.WriteFile(opts.Input, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := RunFavicon(opts)
	if !errors.Is(err, imgio.ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
	if _, err := os.Stat(opts.BasePath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("base image should not exist: %v", err)
	}
}

func TestRunKeyColorInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloodhound-detective-icon.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, stdcolor.NRGBA{250, 240, 228, 255})
	src.SetNRGBA(1, 0, stdcolor.NRGBA{250, 240, 244, 255})
	src.SetNRGBA(2, 0, stdcolor.NRGBA{90, 60, 30, 255})
	writeSource(t, path, src)

	opts := DefaultKeyColorOptions()
	opts.Input = path

	result, err := RunKeyColor(opts)
	if err != nil {
		t.Fatalf("RunKeyColor: %v", err)
	}
	if result.Output != path {
		t.Errorf("output %s, want in-place %s", result.Output, path)
	}
	if result.Transparent != 1 {
		t.Errorf("transparent = %d, want 1", result.Transparent)
	}

	got := loadOutput(t, path)
	want := []stdcolor.NRGBA{
		{255, 255, 255, 0},
		{250, 240, 244, 255},
		{90, 60, 30, 255},
	}
	for x, w := range want {
		if p := got.NRGBAAt(x, 0); p != w {
			t.Errorf("pixel %d = %v, want %v", x, p, w)
		}
	}

	again, err := RunKeyColor(opts)
	if err != nil {
		t.Fatalf("second RunKeyColor: %v", err)
	}
	if again.Transparent != 0 {
		t.Errorf("second run keyed %d pixels, want 0", again.Transparent)
	}
}

func TestRunKeyColorSeparateOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out", "icon.png")
	writeSource(t, in, boltImage(8, 8))

	opts := KeyColorOptions{
		Input:     in,
		Output:    out,
		Target:    color.RGB{R: 255, G: 255, B: 255},
		Tolerance: 0,
	}
	result, err := RunKeyColor(opts)
	if err != nil {
		t.Fatalf("RunKeyColor: %v", err)
	}
	if result.Transparent == 0 {
		t.Error("expected white pixels to be keyed")
	}

	orig := loadOutput(t, in)
	if orig.NRGBAAt(7, 0).A != 255 {
		t.Error("input was modified")
	}
	if loadOutput(t, out).NRGBAAt(7, 0).A != 0 {
		t.Error("output corner not transparent")
	}
}

func TestRunKeyColorMissingSource(t *testing.T) {
	opts := DefaultKeyColorOptions()
	opts.Input = filepath.Join(t.TempDir(), "nope.png")

	if _, err := RunKeyColor(opts); !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("error = %v, want ErrSourceMissing", err)
	}
}
