package segmentation

import "container/heap"

// pixelEntry is one (pixel, cost) pair pushed into the competitive
// segmenter's priority queue. A pixel may appear more than once; stale
// entries are discarded on pop rather than updated in place, per
// SPEC_FULL.md section 4.3's "no decrease-key" design.
type pixelEntry struct {
	pixel int
	cost  float64
}

// pixelQueue is a binary min-heap ordered by ascending cost, grounded on
// the standard container/heap idiom (see adiu19-bpetok-go's MergeHeap in
// the retrieval pack for the same shape applied to a different domain).
type pixelQueue []pixelEntry

func (q pixelQueue) Len() int            { return len(q) }
func (q pixelQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q pixelQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pixelQueue) Push(x interface{}) { *q = append(*q, x.(pixelEntry)) }
func (q *pixelQueue) Pop() interface{} {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// newPixelQueue returns an empty, heap-initialized queue.
func newPixelQueue() *pixelQueue {
	q := &pixelQueue{}
	heap.Init(q)
	return q
}

func (q *pixelQueue) push(pixel int, cost float64) {
	heap.Push(q, pixelEntry{pixel: pixel, cost: cost})
}

func (q *pixelQueue) pop() (pixelEntry, bool) {
	if q.Len() == 0 {
		return pixelEntry{}, false
	}
	return heap.Pop(q).(pixelEntry), true
}
