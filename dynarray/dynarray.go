// Package dynarray implements a growable array on top of fixedarray.
//
// The array owns one FixedArray block. Appending to a full block reallocates
// a block of twice the capacity; removing from a sparsely used block
// reallocates a smaller one. Only indices in [0, Len()) are addressable.
package dynarray

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"gocontainer/fixedarray"
)

const (
	initialCapacity = 4
	// capacity never shrinks below this floor
	minShrinkCapacity = 10
)

// ErrIndexOutOfRange is shared with the backing storage so callers can test
// for one sentinel regardless of which layer rejected the index.
var ErrIndexOutOfRange = fixedarray.ErrIndexOutOfRange

type DynamicArray[T any] struct {
	data *fixedarray.FixedArray[T]
	size int
}

// New returns an array with the default capacity holding values in order.
func New[T any](values ...T) *DynamicArray[T] {
	a := &DynamicArray[T]{
		data: fixedarray.MustNew[T](initialCapacity),
	}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// load and store are only called with indices below the capacity.
func (a *DynamicArray[T]) load(index int) T {
	v, err := a.data.Get(index)
	if err != nil {
		panic(any(err))
	}
	return v
}

func (a *DynamicArray[T]) store(index int, value T) {
	if err := a.data.Set(index, value); err != nil {
		panic(any(err))
	}
}

func (a *DynamicArray[T]) checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return errors.Wrapf(ErrIndexOutOfRange, "%s index %d, size %d", op, index, a.size)
	}
	return nil
}

func (a *DynamicArray[T]) Get(index int) (T, error) {
	if err := a.checkIndex("get", index, a.size); err != nil {
		var zero T
		return zero, err
	}
	return a.load(index), nil
}

func (a *DynamicArray[T]) Set(index int, value T) error {
	if err := a.checkIndex("set", index, a.size); err != nil {
		return err
	}
	a.store(index, value)
	return nil
}

// Swap exchanges the elements at i and j.
func (a *DynamicArray[T]) Swap(i, j int) error {
	if err := a.checkIndex("swap", i, a.size); err != nil {
		return err
	}
	if err := a.checkIndex("swap", j, a.size); err != nil {
		return err
	}
	vi, vj := a.load(i), a.load(j)
	a.store(i, vj)
	a.store(j, vi)
	return nil
}

func (a *DynamicArray[T]) Len() int {
	return a.size
}

func (a *DynamicArray[T]) Cap() int {
	return a.data.Len()
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

// Resize moves the elements into a block of newCapacity slots. Requests
// smaller than Len() or not positive are ignored.
func (a *DynamicArray[T]) Resize(newCapacity int) {
	if newCapacity < a.size || newCapacity <= 0 {
		return
	}
	data := fixedarray.MustNew[T](newCapacity)
	for i := 0; i < a.size; i++ {
		if err := data.Set(i, a.load(i)); err != nil {
			panic(any(err))
		}
	}
	a.data = data
}

func (a *DynamicArray[T]) Append(value T) {
	if a.size == a.Cap() {
		a.Resize(a.Cap() * 2)
	}
	a.store(a.size, value)
	a.size++
}

// InsertAt places value at index, shifting the tail right. index == Len()
// appends.
func (a *DynamicArray[T]) InsertAt(index int, value T) error {
	if err := a.checkIndex("insert", index, a.size+1); err != nil {
		return err
	}
	if a.size == a.Cap() {
		a.Resize(a.Cap() * 2)
	}
	for i := a.size; i > index; i-- {
		a.store(i, a.load(i-1))
	}
	a.store(index, value)
	a.size++
	return nil
}

// RemoveAt deletes the element at index, shifting the tail left. A block
// more than three quarters empty is shrunk before the removal.
func (a *DynamicArray[T]) RemoveAt(index int) error {
	if err := a.checkIndex("remove", index, a.size); err != nil {
		return err
	}
	if a.Cap() > minShrinkCapacity && a.size*4 < a.Cap() {
		newCapacity := a.size * 2
		if newCapacity < minShrinkCapacity {
			newCapacity = minShrinkCapacity
		}
		a.Resize(newCapacity)
	}
	for i := index; i < a.size-1; i++ {
		a.store(i, a.load(i+1))
	}
	var zero T
	a.store(a.size-1, zero)
	a.size--
	return nil
}

// Slice copies length elements starting at start into a new array.
func (a *DynamicArray[T]) Slice(start, length int) (*DynamicArray[T], error) {
	if length < 0 || length > a.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "slice length %d, size %d", length, a.size)
	}
	if err := a.checkIndex("slice", start, a.size); err != nil {
		return nil, err
	}
	if start+length > a.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "slice [%d:%d], size %d", start, start+length, a.size)
	}
	out := New[T]()
	for i := start; i < start+length; i++ {
		out.Append(a.load(i))
	}
	return out, nil
}

// Merge appends every element of other. When the combined length exceeds
// the capacity it is doubled once up front; later appends grow as usual.
func (a *DynamicArray[T]) Merge(other *DynamicArray[T]) {
	n := other.size
	if a.Cap() < a.size+n {
		a.Resize(a.Cap() * 2)
	}
	for i := 0; i < n; i++ {
		a.Append(other.load(i))
	}
}

// Clone returns an array with its own storage and the same elements.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	out := &DynamicArray[T]{
		data: fixedarray.MustNew[T](a.Cap()),
	}
	for i := 0; i < a.size; i++ {
		out.Append(a.load(i))
	}
	return out
}

// Values copies the elements into a slice, mostly for range loops.
func (a *DynamicArray[T]) Values() []T {
	out := make([]T, a.size)
	for i := range out {
		out[i] = a.load(i)
	}
	return out
}

func (a *DynamicArray[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("DYN_ARR Size/Cap: %d/%d [", a.size, a.Cap()))
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(a.load(i)))
	}
	sb.WriteString("]")
	return sb.String()
}
