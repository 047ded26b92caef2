package minheap

import (
	"golang.org/x/exp/constraints"

	"gocontainer/dynarray"
)

// Heapsort sorts a in place in non-ascending order. The array is turned into
// a min-heap, then the root is repeatedly swapped behind the shrinking heap
// window, so the smallest values settle at the back.
func Heapsort[T constraints.Ordered](a *dynarray.DynamicArray[T]) {
	heapify(a)
	for end := a.Len() - 1; end > 0; end-- {
		swap(a, 0, end)
		down(a, 0, end)
	}
}
