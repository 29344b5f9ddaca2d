// Package unionfind implements a disjoint-set forest augmented with
// per-component size and max-internal-edge-weight bookkeeping, the
// substrate the agglomerative segmenter merges pixels over.
//
// Path compression is iterative (two passes: walk to the root, then
// re-parent every visited node directly at it), not recursive, so a
// pathologically elongated chain cannot blow the call stack — the
// reference implementation compresses recursively, but a systems-style
// rewrite should not inherit that risk.
package unionfind
