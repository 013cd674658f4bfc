package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is one favicon export target.
type Size struct {
	Width  int
	Height int
	Name   string
}

// DefaultSizes is the standard favicon set written by RunFavicon.
var DefaultSizes = SquareSizes(16, 32, 48, 64, 96, 128, 192, 256, 512)

// SquareSizes builds favicon-NxN.png entries for each edge length.
func SquareSizes(edges ...int) []Size {
	sizes := make([]Size, len(edges))
	for i, e := range edges {
		sizes[i] = NewSize(e, e)
	}
	return sizes
}

// NewSize names a w×h target favicon-WxH.png.
func NewSize(w, h int) Size {
	return Size{Width: w, Height: h, Name: fmt.Sprintf("favicon-%dx%d.png", w, h)}
}

// ParseSizes parses a comma-separated list of "N" or "WxH" entries.
func ParseSizes(s string) ([]Size, error) {
	var sizes []Size
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		ws, hs, found := strings.Cut(strings.ToLower(f), "x")
		if !found {
			hs = ws
		}
		w, err := strconv.Atoi(ws)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		h, err := strconv.Atoi(hs)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		sizes = append(sizes, NewSize(w, h))
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}
