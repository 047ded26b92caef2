package minheap

import (
	"golang.org/x/exp/constraints"

	"gocontainer/dynarray"
)

// get and set are called with indices already bounded by the array length.
func get[T any](a *dynarray.DynamicArray[T], index int) T {
	v, err := a.Get(index)
	if err != nil {
		panic(any(err))
	}
	return v
}

func set[T any](a *dynarray.DynamicArray[T], index int, value T) {
	if err := a.Set(index, value); err != nil {
		panic(any(err))
	}
}

func swap[T any](a *dynarray.DynamicArray[T], i, j int) {
	if err := a.Swap(i, j); err != nil {
		panic(any(err))
	}
}

// up moves the element at index toward the root while it is strictly
// smaller than its parent.
func up[T constraints.Ordered](a *dynarray.DynamicArray[T], index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if get(a, index) >= get(a, parent) {
			break
		}
		swap(a, index, parent)
		index = parent
	}
}

// down moves the element at parent toward the leaves, swapping with the
// smaller child while that child is smaller. Only indices below length take
// part, which lets heapsort exclude the sorted suffix.
func down[T constraints.Ordered](a *dynarray.DynamicArray[T], parent, length int) {
	for {
		smallest := parent
		left, right := 2*parent+1, 2*parent+2
		if left < length && get(a, left) < get(a, smallest) {
			smallest = left
		}
		if right < length && get(a, right) < get(a, smallest) {
			smallest = right
		}
		if smallest == parent {
			return
		}
		swap(a, parent, smallest)
		parent = smallest
	}
}

// heapify restores the heap order of the whole array, starting from the
// parent of the last element and walking back to the root.
func heapify[T constraints.Ordered](a *dynarray.DynamicArray[T]) {
	n := a.Len()
	for parent := (n - 2) / 2; parent >= 0 && n > 1; parent-- {
		down(a, parent, n)
	}
}
