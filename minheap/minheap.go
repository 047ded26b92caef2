// Package minheap implements a binary min-heap stored in a DynamicArray,
// and an in-place heapsort sharing the heap's percolation.
//
// Element i has children at 2i+1 and 2i+2 and its parent at (i-1)/2.
package minheap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"gocontainer/dynarray"
)

// ErrEmptyHeap is returned when reading or removing the minimum of an empty heap.
var ErrEmptyHeap = errors.New("heap is empty")

type MinHeap[T constraints.Ordered] struct {
	heap *dynarray.DynamicArray[T]
}

// New returns a heap holding values, added one by one.
func New[T constraints.Ordered](values ...T) *MinHeap[T] {
	h := &MinHeap[T]{heap: dynarray.New[T]()}
	for _, v := range values {
		h.Add(v)
	}
	return h
}

func (h *MinHeap[T]) Add(value T) {
	h.heap.Append(value)
	up(h.heap, h.heap.Len()-1)
}

func (h *MinHeap[T]) GetMin() (T, error) {
	if h.heap.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}
	return get(h.heap, 0), nil
}

// RemoveMin removes and returns the root. The last element takes its place
// and is percolated down.
func (h *MinHeap[T]) RemoveMin() (T, error) {
	if h.heap.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}
	last := h.heap.Len() - 1
	root := get(h.heap, 0)
	set(h.heap, 0, get(h.heap, last))
	if err := h.heap.RemoveAt(last); err != nil {
		return root, errors.Wrap(err, "remove last element")
	}
	if h.heap.Len() > 1 {
		down(h.heap, 0, h.heap.Len())
	}
	return root, nil
}

// BuildHeap replaces the contents with a copy of src and restores the heap
// order bottom-up in linear time. src is left untouched.
func (h *MinHeap[T]) BuildHeap(src *dynarray.DynamicArray[T]) {
	h.heap = src.Clone()
	heapify(h.heap)
}

func (h *MinHeap[T]) Size() int {
	return h.heap.Len()
}

func (h *MinHeap[T]) IsEmpty() bool {
	return h.heap.IsEmpty()
}

func (h *MinHeap[T]) Clear() {
	h.heap = dynarray.New[T]()
}

// Values returns the elements in storage order.
func (h *MinHeap[T]) Values() []T {
	return h.heap.Values()
}

func (h *MinHeap[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString("HEAP [")
	for i, v := range h.heap.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(v))
	}
	sb.WriteString("]")
	return sb.String()
}
