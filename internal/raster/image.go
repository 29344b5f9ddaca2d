package raster

import (
	"errors"
	stdimage "image"
	"image/color"
	"math"
)

// Sentinel errors for raster operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("raster: width and height must be positive")

	// ErrUnsupportedChannels indicates a channel count outside {1, 3, 4}.
	ErrUnsupportedChannels = errors.New("raster: channels must be 1, 3, or 4")

	// ErrCoordOutOfBounds indicates a pixel index or (row, col) pair outside the image.
	ErrCoordOutOfBounds = errors.New("raster: coordinate outside image bounds")

	// ErrBadSigma indicates a non-positive Gaussian blur sigma.
	ErrBadSigma = errors.New("raster: sigma must be positive")
)

// Image is a width x height x channels byte raster. It exclusively owns
// Pix; there is no sharing of the backing array across Image values
// produced by this package's constructors.
//
// Invariant: len(Pix) == Width*Height*Channels, Channels in {1, 3, 4},
// Width > 0, Height > 0.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewImage allocates a zeroed Image of the given dimensions and channel
// count. Returns ErrBadDimensions or ErrUnsupportedChannels before
// allocating when the inputs are invalid.
func NewImage(width, height, channels int) (Image, error) {
	if width <= 0 || height <= 0 {
		return Image{}, ErrBadDimensions
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return Image{}, ErrUnsupportedChannels
	}
	return Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}, nil
}

// Len returns the number of pixels, Width*Height.
func (img Image) Len() int {
	return img.Width * img.Height
}

// Index converts (row, col) to the linear pixel index row*Width+col. It
// does not bounds-check; use InBounds first if row/col come from
// untrusted input.
func (img Image) Index(row, col int) int {
	return row*img.Width + col
}

// RowCol recovers (row, col) from a linear pixel index.
func (img Image) RowCol(i int) (row, col int) {
	return i / img.Width, i % img.Width
}

// InBounds reports whether (row, col) addresses a pixel in this image.
func (img Image) InBounds(row, col int) bool {
	return row >= 0 && row < img.Height && col >= 0 && col < img.Width
}

// At returns channel c of pixel i. Panics if i or c is out of range, the
// same contract as the standard library's slice indexing — callers on an
// untrusted i should check 0 <= i < img.Len() first.
func (img Image) At(i, c int) byte {
	if c < 0 || c >= img.Channels {
		panic("raster: channel index out of range")
	}
	return img.Pix[i*img.Channels+c]
}

// Set assigns channel c of pixel i.
func (img Image) Set(i, c int, v byte) {
	img.Pix[i*img.Channels+c] = v
}

// Pixel returns a copy of all channel values for pixel i.
func (img Image) Pixel(i int) []byte {
	start := i * img.Channels
	out := make([]byte, img.Channels)
	copy(out, img.Pix[start:start+img.Channels])
	return out
}

// ChannelMean returns the mean of pixel i's channel values, the scalar
// used as Sobel's input and the luminance proxy used throughout this
// package. Channels with an alpha component (4) include alpha in the
// mean, matching the reference's unconditional channel sum.
func (img Image) ChannelMean(i int) float64 {
	start := i * img.Channels
	var sum int
	for c := 0; c < img.Channels; c++ {
		sum += int(img.Pix[start+c])
	}
	return float64(sum) / float64(img.Channels)
}

// EuclideanDistance returns the Euclidean distance between pixels a and b
// in raw channel space: sqrt(sum_c (Pix[a,c]-Pix[b,c])^2). Both indices
// must be valid; see EuclideanCost for a bounds-checked wrapper.
func (img Image) EuclideanDistance(a, b int) float64 {
	var sumSq float64
	ca := a * img.Channels
	cb := b * img.Channels
	for c := 0; c < img.Channels; c++ {
		d := float64(img.Pix[ca+c]) - float64(img.Pix[cb+c])
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

// FromStdImage converts a standard library image.Image into an owned
// Image. Images with an alpha channel (RGBA/NRGBA and their 64-bit
// variants) are kept as 4-channel; all others are flattened to 3-channel
// RGB. 8-bit truncation follows the standard library's own >>8 widening
// convention for 16-bit sources.
func FromStdImage(src stdimage.Image) (Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := 3
	switch src.(type) {
	case *stdimage.RGBA, *stdimage.NRGBA, *stdimage.RGBA64, *stdimage.NRGBA64:
		channels = 4
	}

	img, err := NewImage(width, height, channels)
	if err != nil {
		return Image{}, err
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r, g, b, a := src.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			i := img.Index(row, col)
			img.Set(i, 0, byte(r>>8))
			img.Set(i, 1, byte(g>>8))
			img.Set(i, 2, byte(b>>8))
			if channels == 4 {
				img.Set(i, 3, byte(a>>8))
			}
		}
	}
	return img, nil
}

// ToStdImage converts the Image to a standard library image.Image for
// encoding. 1-channel images become *image.Gray, 3-channel become
// *image.RGBA with alpha forced opaque, 4-channel become *image.RGBA.
func (img Image) ToStdImage() stdimage.Image {
	switch img.Channels {
	case 1:
		out := stdimage.NewGray(stdimage.Rect(0, 0, img.Width, img.Height))
		for i := 0; i < img.Len(); i++ {
			row, col := img.RowCol(i)
			out.SetGray(col, row, color.Gray{Y: img.At(i, 0)})
		}
		return out
	default:
		out := stdimage.NewRGBA(stdimage.Rect(0, 0, img.Width, img.Height))
		for i := 0; i < img.Len(); i++ {
			row, col := img.RowCol(i)
			r := img.At(i, 0)
			g := img.At(i, 1)
			b := img.At(i, 2)
			a := byte(255)
			if img.Channels == 4 {
				a = img.At(i, 3)
			}
			out.SetRGBA(col, row, color.RGBA{R: r, G: g, B: b, A: a})
		}
		return out
	}
}
