package raster

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 5, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoaderLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path)

	loaded, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != 3 || loaded.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", loaded.Width, loaded.Height)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	if _, err := NewLoader().Load("/nonexistent/path.png"); err == nil {
		t.Fatal("Load on a missing file should error")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	img, err := NewImage(2, 2, 3)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	for i := 0; i < img.Len(); i++ {
		img.Set(i, 0, byte(i*50))
	}

	for _, ext := range []string{".png", ".jpg", ".bmp"} {
		path := filepath.Join(dir, "out"+ext)
		if err := Encode(img, path); err != nil {
			t.Fatalf("Encode %s: %v", ext, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("Encode %s: file not written: %v", ext, err)
		}
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	img, err := NewImage(1, 1, 1)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	path := filepath.Join(dir, "out.tga")
	if err := Encode(img, path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(.tga) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	img, err := NewImage(1, 1, 3)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	path := filepath.Join(dir, "nested", "out.png")
	if err := Encode(img, path); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected nested output file: %v", err)
	}
}
