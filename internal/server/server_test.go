package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coldbrook/pixelseg/internal/logging"
)

func writeGrayPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if x >= w/2 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: v})
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

func TestRunImageInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeGrayPNG(t, path, 4, 4)

	reqLine := `{"id":1,"method":"image.info","params":{"path":"` + path + `"}}` + "\n"
	var out bytes.Buffer
	if err := New(logging.New()).Run(strings.NewReader(reqLine), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
}

func TestRunUnknownMethod(t *testing.T) {
	var out bytes.Buffer
	if err := New(logging.New()).Run(strings.NewReader(`{"id":1,"method":"bogus"}`+"\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected an error response for an unknown method")
	}
}

func TestRunSkipsMalformedLine(t *testing.T) {
	input := "not json\n" + `{"id":2,"method":"bogus"}` + "\n"
	var out bytes.Buffer
	if err := New(logging.New()).Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Only the second, well-formed line should have produced a response.
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d response lines, want 1", len(lines))
	}
}

func TestRunSegmentAgglomerative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeGrayPNG(t, path, 6, 6)

	reqLine := `{"id":3,"method":"segment.agglomerative","params":{"path":"` + path + `","k":1}}` + "\n"
	var out bytes.Buffer
	if err := New(logging.New()).Run(strings.NewReader(reqLine), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
}

func TestRunSegmentCompetitiveRunsOnGradient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeGrayPNG(t, path, 6, 6)

	reqLine := `{"id":4,"method":"segment.competitive","params":{"path":"` + path + `","seeds":{"0":1,"35":2}}}` + "\n"
	var out bytes.Buffer
	if err := New(logging.New()).Run(strings.NewReader(reqLine), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	// Pixel 8 (row 1, col 2) is black in the source and touches black
	// pixels, but lies on the 255-valued band the Sobel gradient puts
	// along the black/white boundary. Its cost is 255 only when the
	// segmenter runs on the gradient; on the source image it would be 0.
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result = %T, want a JSON object", resp.Result)
	}
	costs, ok := result["costs"].([]interface{})
	if !ok || len(costs) != 36 {
		t.Fatalf("costs = %v, want 36 entries", result["costs"])
	}
	if got, _ := costs[8].(float64); got != 255 {
		t.Errorf("costs[8] = %v, want 255 (cost of entering the gradient's edge band)", costs[8])
	}
}
