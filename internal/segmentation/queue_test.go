package segmentation

import "testing"

func TestPixelQueueOrdersByCost(t *testing.T) {
	q := newPixelQueue()
	q.push(3, 5.0)
	q.push(1, 1.0)
	q.push(2, 3.0)

	wantOrder := []int{1, 2, 3}
	for _, want := range wantOrder {
		entry, ok := q.pop()
		if !ok {
			t.Fatalf("pop() returned no entry, want pixel %d", want)
		}
		if entry.pixel != want {
			t.Fatalf("pop() = pixel %d, want %d", entry.pixel, want)
		}
	}
	if _, ok := q.pop(); ok {
		t.Fatalf("pop() on empty queue returned an entry")
	}
}
