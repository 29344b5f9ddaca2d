package raster

import (
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat indicates an encode target extension this loader
// does not support. TGA and HDR are intentionally not implemented; see
// SPEC_FULL.md section 9 for why.
var ErrUnsupportedFormat = errors.New("raster: unsupported output format")

func init() {
	stdimage.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Loader decodes image files from disk into owned Image values. It holds
// no state; it exists as a named type so CLI and daemon call sites share
// one obvious entry point, mirroring the teacher's ImageCache without the
// cache — segmenter runs are one-shot and re-decoding is not on any hot
// path here.
type Loader struct{}

// NewLoader returns a ready-to-use Loader.
func NewLoader() Loader {
	return Loader{}
}

// Load decodes the image at path. Supported input formats are PNG, JPEG,
// GIF, and BMP; format is sniffed from the file content, not the
// extension.
func (Loader) Load(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := stdimage.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("raster: decode %s: %w", path, err)
	}
	return FromStdImage(src)
}

// Encode writes img to path. The output format is selected by path's
// file extension: .png, .jpg/.jpeg (quality 100, matching the reference's
// fixed JPEG quality), or .bmp. Any other extension, including .tga and
// .hdr, returns ErrUnsupportedFormat.
func Encode(img Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raster: create output dir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()

	std := img.ToStdImage()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode(f, std)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, std, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(f, std)
	default:
		return fmt.Errorf("raster: %s: %w", ext, ErrUnsupportedFormat)
	}
}
