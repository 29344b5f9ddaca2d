package unionfind

// Forest is a disjoint-set forest over the elements [0, N). Each root
// carries the size of its component and the largest edge weight ever
// admitted into it (MaxInternal), so callers can evaluate a merge
// criterion without a separate side table.
//
// Forest is not safe for concurrent use — per the segmentation package's
// single-threaded run model, one Forest belongs to exactly one
// segmenter run.
type Forest struct {
	parent      []int
	size        []int
	maxInternal []float64
}

// New returns a Forest where every element of [0, n) is its own
// singleton component: size 1, MaxInternal 0.
func New(n int) *Forest {
	f := &Forest{
		parent:      make([]int, n),
		size:        make([]int, n),
		maxInternal: make([]float64, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// Len returns the number of elements the forest was constructed over.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find returns the root of i's component, compressing every node on the
// path to point directly at the root.
func (f *Forest) Find(i int) int {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		f.parent[i], i = root, f.parent[i]
	}
	return root
}

// Size returns the number of elements in root's component. root must be
// a root (Find(root) == root); behavior is undefined otherwise.
func (f *Forest) Size(root int) int {
	return f.size[root]
}

// MaxInternal returns the largest edge weight admitted into root's
// component so far. root must be a root.
func (f *Forest) MaxInternal(root int) float64 {
	return f.maxInternal[root]
}

// Union merges the components rooted at a and b, attaching the smaller
// component under the larger (ties broken toward a, for determinism).
// Both a and b must already be roots and a != b. w becomes the new
// root's MaxInternal — correct only when the caller processes admitted
// edges in non-decreasing weight order, the invariant the agglomerative
// segmenter's sort establishes. Always returns true; the caller already
// guaranteed a != b, so the merge cannot fail.
func (f *Forest) Union(a, b int, w float64) bool {
	if f.size[a] < f.size[b] {
		a, b = b, a
	}
	f.parent[b] = a
	f.size[a] += f.size[b]
	f.maxInternal[a] = w
	return true
}
