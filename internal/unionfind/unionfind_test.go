package unionfind

import "testing"

func TestNewSingletons(t *testing.T) {
	f := New(5)
	for i := 0; i < 5; i++ {
		if root := f.Find(i); root != i {
			t.Fatalf("Find(%d) = %d, want %d", i, root, i)
		}
		if f.Size(i) != 1 {
			t.Fatalf("Size(%d) = %d, want 1", i, f.Size(i))
		}
		if f.MaxInternal(i) != 0 {
			t.Fatalf("MaxInternal(%d) = %v, want 0", i, f.MaxInternal(i))
		}
	}
}

func TestUnionBySize(t *testing.T) {
	f := New(4)
	// Grow {0,1,2} to size 3 first.
	f.Union(f.Find(0), f.Find(1), 1.0)
	f.Union(f.Find(0), f.Find(2), 2.0)

	bigRoot := f.Find(0)
	if f.Size(bigRoot) != 3 {
		t.Fatalf("Size(bigRoot) = %d, want 3", f.Size(bigRoot))
	}

	// Union the size-3 component with the size-1 singleton {3}; the
	// singleton must attach under the larger component, not vice versa.
	f.Union(f.Find(3), bigRoot, 5.0)
	newRoot := f.Find(3)
	if newRoot != bigRoot {
		t.Fatalf("Find(3) after union = %d, want %d (smaller attaches under larger)", newRoot, bigRoot)
	}
	if f.Size(newRoot) != 4 {
		t.Fatalf("Size(newRoot) = %d, want 4", f.Size(newRoot))
	}
	if f.MaxInternal(newRoot) != 5.0 {
		t.Fatalf("MaxInternal(newRoot) = %v, want 5.0", f.MaxInternal(newRoot))
	}
}

// TestSizeInvariant checks invariant 1 from SPEC_FULL.md: Size(r) equals
// the cardinality of {i : Find(i) = r} for every root r, at every
// observable moment.
func TestSizeInvariant(t *testing.T) {
	f := New(6)
	unions := [][2]int{{0, 1}, {2, 3}, {1, 2}, {4, 5}}
	for _, u := range unions {
		ra, rb := f.Find(u[0]), f.Find(u[1])
		if ra == rb {
			continue
		}
		f.Union(ra, rb, 1.0)

		roots := make(map[int]int)
		for i := 0; i < f.Len(); i++ {
			roots[f.Find(i)]++
		}
		for root, count := range roots {
			if f.Size(root) != count {
				t.Fatalf("Size(%d) = %d, want %d", root, f.Size(root), count)
			}
		}
	}
}

func TestFindPathCompression(t *testing.T) {
	f := New(3)
	// Build a manual chain 2 -> 1 -> 0 bypassing Union's by-size logic,
	// to exercise path compression on a non-trivial depth.
	f.parent[1] = 0
	f.parent[2] = 1
	f.size[0] = 3

	if root := f.Find(2); root != 0 {
		t.Fatalf("Find(2) = %d, want 0", root)
	}
	if f.parent[2] != 0 {
		t.Fatalf("after Find(2), parent[2] = %d, want 0 (path compression)", f.parent[2])
	}
	if f.parent[1] != 0 {
		t.Fatalf("after Find(2), parent[1] = %d, want 0 (path compression)", f.parent[1])
	}
}
