package segmentation

import (
	"errors"
	"sort"

	"github.com/coldbrook/pixelseg/internal/raster"
	"github.com/coldbrook/pixelseg/internal/unionfind"
)

// ErrInvalidScale indicates a non-positive scale parameter k was passed
// to AgglomerativeSegmenter.Segment.
var ErrInvalidScale = errors.New("segmentation: scale k must be positive")

// pixelEdge is one 4-connected adjacency edge between two pixel indices,
// weighted by Euclidean distance in raw channel space.
type pixelEdge struct {
	u, v   int
	weight float64
}

// AgglomerativeSegmenter builds the 4-connected pixel adjacency graph of
// an image and merges pixels bottom-up under an adaptive
// internal-difference threshold (Felzenszwalb-Huttenlocher-style),
// grounded on the reference Segmenter::segment.
type AgglomerativeSegmenter struct {
	image raster.Image
}

// NewAgglomerativeSegmenter binds a segmenter to img. img is borrowed
// for the lifetime of any Segment call; the segmenter does not copy it.
func NewAgglomerativeSegmenter(img raster.Image) *AgglomerativeSegmenter {
	return &AgglomerativeSegmenter{image: img}
}

// Segment partitions the bound image into regions. k controls the scale
// of segmentation: larger k prefers larger regions. Returns a label
// buffer of length Width*Height where each pixel's label is the
// canonical root pixel index of its component.
//
// A degenerate image (width or height <= 0, which raster.NewImage never
// actually produces, but Segment treats defensively) yields an empty
// label buffer with no error. A non-positive k is rejected with
// ErrInvalidScale before any buffer is allocated.
func (s *AgglomerativeSegmenter) Segment(k float64) ([]int, error) {
	n := s.image.Len()
	if n == 0 {
		return []int{}, nil
	}
	if k <= 0 {
		return nil, ErrInvalidScale
	}

	edges := s.buildGraph()
	sort.Slice(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	forest := unionfind.New(n)
	for _, e := range edges {
		ru, rv := forest.Find(e.u), forest.Find(e.v)
		if ru == rv {
			continue
		}

		tauU := k / float64(forest.Size(ru))
		tauV := k / float64(forest.Size(rv))
		mInt := forest.MaxInternal(ru) + tauU
		if alt := forest.MaxInternal(rv) + tauV; alt < mInt {
			mInt = alt
		}

		if e.weight <= mInt {
			forest.Union(ru, rv, e.weight)
		}
	}

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = forest.Find(i)
	}
	return labels, nil
}

// buildGraph emits one edge to the right neighbor and one to the bottom
// neighbor of every pixel that has them (4-connectivity), weighted by
// Euclidean distance in channel space. No edge is emitted for
// out-of-bounds neighbors, and no pixel pair is ever emitted twice.
func (s *AgglomerativeSegmenter) buildGraph() []pixelEdge {
	img := s.image
	edges := make([]pixelEdge, 0, 2*img.Len())

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			current := img.Index(row, col)

			if col+1 < img.Width {
				right := img.Index(row, col+1)
				edges = append(edges, pixelEdge{u: current, v: right, weight: img.EuclideanDistance(current, right)})
			}
			if row+1 < img.Height {
				bottom := img.Index(row+1, col)
				edges = append(edges, pixelEdge{u: current, v: bottom, weight: img.EuclideanDistance(current, bottom)})
			}
		}
	}
	return edges
}
