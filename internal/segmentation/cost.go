package segmentation

import (
	"math"

	"github.com/coldbrook/pixelseg/internal/raster"
)

// EdgeCost is the polymorphic capability the competitive segmenter
// relies on: given two pixel indices, return a non-negative cost. Out-of
// range indices should return +Inf so the caller treats the edge as
// non-existent rather than panicking.
type EdgeCost interface {
	Cost(u, v int) float64
}

// EuclideanCost computes edge cost as the Euclidean distance between two
// pixels' channel vectors in Image. It is the one concrete provider the
// core itself supplies, grounded on the reference's
// EuclidianDistance_EdgeCost.
type EuclideanCost struct {
	Image raster.Image
}

// NewEuclideanCost returns an EuclideanCost bound to img.
func NewEuclideanCost(img raster.Image) EuclideanCost {
	return EuclideanCost{Image: img}
}

// Cost returns the Euclidean channel-space distance between pixels u and
// v, or +Inf if either index is out of range.
func (e EuclideanCost) Cost(u, v int) float64 {
	n := e.Image.Len()
	if u < 0 || u >= n || v < 0 || v >= n {
		return math.Inf(1)
	}
	return e.Image.EuclideanDistance(u, v)
}

// UniformCost assigns every edge the same fixed cost, turning the
// competitive segmenter into a plain multi-source breadth-first labeling
// when Weight is 1.
type UniformCost struct {
	Weight float64
}

// Cost always returns Weight, regardless of u and v.
func (u UniformCost) Cost(int, int) float64 {
	return u.Weight
}

// FuncCost adapts an arbitrary cost function to the EdgeCost interface,
// the "Custom" arm of the tagged-variant design SPEC_FULL.md calls for.
type FuncCost func(u, v int) float64

// Cost calls the wrapped function.
func (f FuncCost) Cost(u, v int) float64 {
	return f(u, v)
}
