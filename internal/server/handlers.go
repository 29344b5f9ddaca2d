package server

import (
	"encoding/json"
	"fmt"

	"github.com/coldbrook/pixelseg/internal/raster"
	"github.com/coldbrook/pixelseg/internal/segmentation"
)

type agglomerativeParams struct {
	Path      string  `json:"path"`
	K         float64 `json:"k"`
	Sigma     float64 `json:"sigma"`
	Downscale int     `json:"downscale"`
	Normalize float64 `json:"normalize"`
}

type agglomerativeResult struct {
	Width   int   `json:"width"`
	Height  int   `json:"height"`
	Labels  []int `json:"labels"`
	NumSegs int   `json:"num_segments"`
}

func handleAgglomerative(raw json.RawMessage) (interface{}, error) {
	var p agglomerativeParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if p.Path == "" {
		return nil, fmt.Errorf("params.path is required")
	}
	if p.K <= 0 {
		p.K = 500
	}

	img, err := raster.NewLoader().Load(p.Path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p.Path, err)
	}
	if p.Downscale > 0 {
		img, err = raster.Downscale(img, p.Downscale)
		if err != nil {
			return nil, fmt.Errorf("downscaling %s: %w", p.Path, err)
		}
	}
	if p.Normalize > 0 {
		img, err = raster.Normalize(img, p.Normalize)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", p.Path, err)
		}
	}
	if p.Sigma > 0 {
		img, err = raster.GaussianBlur(img, p.Sigma)
		if err != nil {
			return nil, fmt.Errorf("blurring %s: %w", p.Path, err)
		}
	}

	labels, err := segmentation.NewAgglomerativeSegmenter(img).Segment(p.K)
	if err != nil {
		return nil, err
	}
	return &agglomerativeResult{
		Width:   img.Width,
		Height:  img.Height,
		Labels:  labels,
		NumSegs: countDistinct(labels),
	}, nil
}

type competitiveParams struct {
	Path      string         `json:"path"`
	Seeds     map[string]int `json:"seeds"`
	Conn      int            `json:"conn"`
	Downscale int            `json:"downscale"`
	Normalize float64        `json:"normalize"`
}

type competitiveResult struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Labels []int     `json:"labels"`
	Costs  []float64 `json:"costs"`
}

func handleCompetitive(raw json.RawMessage) (interface{}, error) {
	var p competitiveParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if p.Path == "" {
		return nil, fmt.Errorf("params.path is required")
	}
	conn := segmentation.Conn8
	if p.Conn == 4 {
		conn = segmentation.Conn4
	}

	img, err := raster.NewLoader().Load(p.Path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p.Path, err)
	}
	if p.Downscale > 0 {
		img, err = raster.Downscale(img, p.Downscale)
		if err != nil {
			return nil, fmt.Errorf("downscaling %s: %w", p.Path, err)
		}
	}
	if p.Normalize > 0 {
		img, err = raster.Normalize(img, p.Normalize)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", p.Path, err)
		}
	}
	gradient, err := raster.SobelGradient(img)
	if err != nil {
		return nil, fmt.Errorf("computing gradient for %s: %w", p.Path, err)
	}

	seeds, err := decodeSeeds(p.Seeds, gradient.Len())
	if err != nil {
		return nil, err
	}

	cost := segmentation.NewEuclideanCost(gradient)
	result := segmentation.NewCompetitiveSegmenter(gradient, conn, cost).Run(seeds)
	return &competitiveResult{
		Width:  img.Width,
		Height: img.Height,
		Labels: result.Labels,
		Costs:  result.Costs,
	}, nil
}

type imageInfoParams struct {
	Path string `json:"path"`
}

type imageInfoResult struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

func handleImageInfo(raw json.RawMessage) (interface{}, error) {
	var p imageInfoParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if p.Path == "" {
		return nil, fmt.Errorf("params.path is required")
	}
	img, err := raster.NewLoader().Load(p.Path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p.Path, err)
	}
	return &imageInfoResult{Width: img.Width, Height: img.Height, Channels: img.Channels}, nil
}

// decodeSeeds converts the wire representation (string pixel index ->
// label, since JSON object keys are always strings) into the int-keyed
// map the segmentation engine expects, rejecting out-of-range pixels
// up front rather than letting the engine silently skip them.
func decodeSeeds(raw map[string]int, n int) (map[int]int, error) {
	seeds := make(map[int]int, len(raw))
	for k, label := range raw {
		var pixel int
		if _, err := fmt.Sscanf(k, "%d", &pixel); err != nil {
			return nil, fmt.Errorf("invalid seed pixel key %q: %w", k, err)
		}
		if pixel < 0 || pixel >= n {
			return nil, fmt.Errorf("seed pixel %d out of range for image of %d pixels", pixel, n)
		}
		seeds[pixel] = label
	}
	return seeds, nil
}

func countDistinct(labels []int) int {
	seen := make(map[int]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
