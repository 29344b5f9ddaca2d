package raster

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorStrategy selects how Colorize maps distinct label values to RGB
// triples.
type ColorStrategy int

const (
	// HashPalette deterministically hashes each label's ordinal into RGB
	// space. Two runs over the same label buffer produce byte-identical
	// output; this is the strategy test suites should pin.
	HashPalette ColorStrategy = iota

	// RandomPalette draws perceptually-distinct warm colors via
	// go-colorful, rejection-sampling against previously used colors
	// until a sufficiently different one is found.
	RandomPalette
)

// RGBColor is an 8-bit RGB triple.
type RGBColor struct {
	R, G, B uint8
}

// Hex renders the color as a "#RRGGBB" string.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Colorize maps a label buffer to a 3-channel color image of the same
// dimensions. labels must have length width*height.
//
// Strategy HashPalette assigns color (67*j mod 256, 179*j mod 256,
// 241*j mod 256), where j is the ordinal of the label's value in a
// sorted sequence of distinct labels — the exact formula the reference
// uses for its deterministic palette.
//
// Strategy RandomPalette draws from go-colorful's perceptual warm-color
// generator and rejects draws too close (in Lab space) to any color
// already assigned, so distinct segments stay visually distinguishable
// even though the draw itself is non-deterministic.
func Colorize(labels []int, width, height int, strategy ColorStrategy) (Image, error) {
	out, err := NewImage(width, height, 3)
	if err != nil {
		return Image{}, err
	}
	if len(labels) != out.Len() {
		return Image{}, fmt.Errorf("raster: Colorize: %d labels for a %dx%d image", len(labels), width, height)
	}

	palette := buildPalette(labels, strategy)
	for i, label := range labels {
		c := palette[label]
		out.Set(i, 0, c.R)
		out.Set(i, 1, c.G)
		out.Set(i, 2, c.B)
	}
	return out, nil
}

func buildPalette(labels []int, strategy ColorStrategy) map[int]RGBColor {
	distinct := distinctSorted(labels)
	palette := make(map[int]RGBColor, len(distinct))

	switch strategy {
	case RandomPalette:
		used := make([]colorful.Color, 0, len(distinct))
		for _, label := range distinct {
			c := distinctRandomColor(used)
			used = append(used, c)
			r, g, b := c.RGB255()
			palette[label] = RGBColor{R: r, G: g, B: b}
		}
	default: // HashPalette
		for j, label := range distinct {
			palette[label] = RGBColor{
				R: uint8((j * 67) % 256),
				G: uint8((j * 179) % 256),
				B: uint8((j * 241) % 256),
			}
		}
	}
	return palette
}

// distinctRandomColor draws go-colorful warm colors until one is found
// that is perceptually distant (Lab distance > 0.2) from every color
// already in used, or gives up after a bounded number of attempts and
// returns its last draw.
func distinctRandomColor(used []colorful.Color) colorful.Color {
	const maxAttempts = 50
	const minDistance = 0.2

	candidate := colorful.FastWarmColor()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate = colorful.FastWarmColor()
		farEnough := true
		for _, u := range used {
			if candidate.DistanceLab(u) < minDistance {
				farEnough = false
				break
			}
		}
		if farEnough {
			break
		}
	}
	return candidate
}

func distinctSorted(labels []int) []int {
	seen := make(map[int]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	distinct := make([]int, 0, len(seen))
	for l := range seen {
		distinct = append(distinct, l)
	}
	sort.Ints(distinct)
	return distinct
}
