package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/section31nx/fluttericons-website/internal/imgio"
)

// Output describes one written file.
type Output struct {
	Path   string
	Width  int
	Height int
}

// Export Lanczos-resizes base to every entry of sizes and saves each as PNG
// under dir, creating dir first. The first failure aborts the export;
// files already written are left in place.
func Export(base image.Image, dir string, sizes []Size) ([]Output, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	outputs := make([]Output, 0, len(sizes))
	for _, s := range sizes {
		resized := imaging.Resize(base, s.Width, s.Height, imaging.Lanczos)
		path := filepath.Join(dir, s.Name)
		if err := imgio.SavePNG(path, resized); err != nil {
			return outputs, fmt.Errorf("export %s: %w", s.Name, err)
		}
		outputs = append(outputs, Output{Path: path, Width: s.Width, Height: s.Height})
	}
	return outputs, nil
}
