package raster

import (
	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// Downscale resizes img so its longest side is at most maxDim pixels,
// preserving aspect ratio via Lanczos resampling. Images already within
// maxDim are returned unchanged. This is an optional CLI pre-processing
// step — large source photos segment faster once downscaled, and the
// segmentation result is still useful for a coarse preview.
func Downscale(img Image, maxDim int) (Image, error) {
	if maxDim <= 0 || (img.Width <= maxDim && img.Height <= maxDim) {
		return img, nil
	}

	var width, height int
	if img.Width >= img.Height {
		width, height = maxDim, 0
	} else {
		width, height = 0, maxDim
	}

	resized := imaging.Resize(img.ToStdImage(), width, height, imaging.Lanczos)
	return FromStdImage(resized)
}

// Normalize stretches image contrast before segmentation, which helps
// the agglomerative merge criterion separate regions in washed-out
// source photos. It is an optional pre-processing flag, not part of the
// segmentation core itself.
func Normalize(img Image, percentage float64) (Image, error) {
	adjusted := adjust.Contrast(img.ToStdImage(), percentage)
	return FromStdImage(adjusted)
}
