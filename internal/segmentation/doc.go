// Package segmentation implements the two pixel-graph partitioning
// engines over a raster.Image: AgglomerativeSegmenter (bottom-up region
// merging under an adaptive internal-difference threshold) and
// CompetitiveSegmenter (seeded multi-source shortest-path labeling,
// essentially multi-source Dijkstra over the pixel grid).
//
// Both engines are single-threaded, non-suspending, synchronous
// transformations: construct a segmenter, call its Segment/Run method
// once, consume the returned label buffer. A segmenter must not outlive
// the raster.Image it was built from, and distinct segmenter instances
// never share a unionfind.Forest or priority queue.
package segmentation
