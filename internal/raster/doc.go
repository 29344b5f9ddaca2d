// Package raster owns the pixel buffer that both segmentation engines
// consume and produce: a width x height x channels byte raster, a Gaussian
// blur conditioner, a Sobel gradient conditioner, a file-backed loader and
// encoder, and the label-to-color visualization mapper.
//
// # Pixel Addressing
//
// A pixel is addressed by a linear index i = row*width + col, 0 <= i <
// width*height. Pixel i's channel c lives at Pix[i*Channels+c]. This
// indexing is the shared vocabulary between raster, unionfind, and
// segmentation.
//
// # Ownership
//
// Image exclusively owns its Pix backing array. Loader.Load allocates a
// fresh Image per call; callers that want to mutate an Image in place
// (blur, normalize) receive a new Image back rather than mutating the
// input, so a caller holding the original is never surprised.
//
// # Error Handling
//
// Constructors validate dimensions and channel count up front (channels
// must be 1, 3 or 4; width and height must be positive) and return
// ErrBadDimensions / ErrUnsupportedChannels before any buffer is
// allocated. Decode/encode failures are wrapped and returned unchanged.
package raster
