package color

import (
	"fmt"
	"image"
)

// Defaults for the two keying rules.
const (
	DefaultWhiteMin  = 240
	DefaultTolerance = 15
)

// DefaultKeyTarget is the cream background of the detective icon.
var DefaultKeyTarget = RGB{R: 250, G: 240, B: 228}

// Rule decides whether a pixel is keyed out and what it becomes.
type Rule interface {
	Match(r, g, b, a uint8) bool
	Replace(r, g, b, a uint8) (uint8, uint8, uint8, uint8)
	String() string
}

// WhiteThreshold matches pixels whose red, green and blue are all strictly
// above Min. Matched pixels keep their color and lose their alpha.
type WhiteThreshold struct {
	Min uint8
}

func (w WhiteThreshold) Match(r, g, b, _ uint8) bool {
	return r > w.Min && g > w.Min && b > w.Min
}

func (w WhiteThreshold) Replace(r, g, b, _ uint8) (uint8, uint8, uint8, uint8) {
	return r, g, b, 0
}

func (w WhiteThreshold) String() string {
	return fmt.Sprintf("white > %d", w.Min)
}

// KeyColor matches pixels whose channels each lie within Tolerance of
// Target. Matched pixels become transparent white.
type KeyColor struct {
	Target    RGB
	Tolerance uint8
}

func (k KeyColor) Match(r, g, b, _ uint8) bool {
	return within(r, k.Target.R, k.Tolerance) &&
		within(g, k.Target.G, k.Tolerance) &&
		within(b, k.Target.B, k.Tolerance)
}

func (k KeyColor) Replace(_, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 255, 255, 255, 0
}

func (k KeyColor) String() string {
	return fmt.Sprintf("%s ±%d", k.Target.Hex(), k.Tolerance)
}

func within(v, ref, tol uint8) bool {
	d := int(v) - int(ref)
	if d < 0 {
		d = -d
	}
	return d <= int(tol)
}

// Apply returns a copy of src with every pixel matching rule replaced, and
// the number of matched pixels. Bounds and pixel order are preserved.
func Apply(src *image.NRGBA, rule Rule) (*image.NRGBA, int) {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	matched := 0
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := 0; x < w; x++ {
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if rule.Match(r, g, bl, a) {
				r, g, bl, a = rule.Replace(r, g, bl, a)
				matched++
			}
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = r, g, bl, a
			si += 4
			di += 4
		}
	}
	return dst, matched
}

// Count reports how many pixels of img match rule.
func Count(img *image.NRGBA, rule Rule) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if rule.Match(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]) {
				n++
			}
			i += 4
		}
	}
	return n
}

// Transparent counts fully transparent pixels.
func Transparent(img *image.NRGBA) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i+3] == 0 {
				n++
			}
			i += 4
		}
	}
	return n
}
