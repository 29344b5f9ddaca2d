package raster

import "math"

// sobelGx and sobelGy are the standard 3x3 Sobel kernels; Gy is Gx
// rotated 90 degrees, per the reference.
var (
	sobelGx = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelGy = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelGradient produces a single-channel gradient-magnitude image from
// a multi-channel input. Each pixel's scalar value is the mean of its
// input channels (ChannelMean); output magnitude is
// clamp(sqrt(gx^2+gy^2), 0, 255). Border pixels (the first and last row
// and column) are zero — the reference does not replicate edges at the
// margin, and this implementation preserves that bit-for-bit rather than
// "fixing" it, per SPEC_FULL.md section 9.
func SobelGradient(img Image) (Image, error) {
	out, err := NewImage(img.Width, img.Height, 1)
	if err != nil {
		return Image{}, err
	}
	if img.Width < 3 || img.Height < 3 {
		return out, nil
	}

	scalar := make([]float64, img.Len())
	for i := range scalar {
		scalar[i] = img.ChannelMean(i)
	}

	for row := 1; row < img.Height-1; row++ {
		for col := 1; col < img.Width-1; col++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := scalar[img.Index(row+ky, col+kx)]
					gx += sobelGx[ky+1][kx+1] * v
					gy += sobelGy[ky+1][kx+1] * v
				}
			}
			mag := math.Sqrt(gx*gx + gy*gy)
			out.Set(out.Index(row, col), 0, clampByte(mag))
		}
	}
	return out, nil
}
