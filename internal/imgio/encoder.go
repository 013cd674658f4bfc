package imgio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// MaxICOSize is the largest edge an ICO directory entry can describe.
const MaxICOSize = 256

// EncodePNG writes img as PNG. NRGBA input keeps the color of fully
// transparent pixels.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePNG encodes img as PNG at path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

// EncodeICO scales img into a size×size square, centred and aspect
// preserved, and writes it as a single-entry ICO.
func EncodeICO(w io.Writer, img image.Image, size int) error {
	if size <= 0 || size > MaxICOSize {
		return fmt.Errorf("ico size %d out of range 1-%d", size, MaxICOSize)
	}
	return ico.Encode(w, fitSquare(img, size))
}

// SaveICO is EncodeICO to a file, creating parent directories.
func SaveICO(path string, img image.Image, size int) error {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, img, size); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

func fitSquare(src image.Image, size int) *image.NRGBA {
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if sb.Empty() {
		return dst
	}
	scale := math.Min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	w := max(1, int(math.Round(float64(sb.Dx())*scale)))
	h := max(1, int(math.Round(float64(sb.Dy())*scale)))
	offX := (size - w) / 2
	offY := (size - h) / 2
	xdraw.CatmullRom.Scale(dst, image.Rect(offX, offY, offX+w, offY+h), src, sb, xdraw.Over, nil)
	return dst
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
