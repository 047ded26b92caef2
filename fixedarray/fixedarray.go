// Package fixedarray provides a fixed-length block of storage that the
// growable containers reallocate as a whole instead of appending to it.
package fixedarray

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned for any access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidCapacity is returned when a non-positive capacity is requested.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// FixedArray is a block of capacity slots. Every slot starts at the zero
// value of T; the array never grows or shrinks.
type FixedArray[T any] struct {
	data []T
}

func New[T any](capacity int) (*FixedArray[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &FixedArray[T]{data: make([]T, capacity)}, nil
}

// MustNew is New for capacities already known to be valid.
func MustNew[T any](capacity int) *FixedArray[T] {
	f, err := New[T](capacity)
	if err != nil {
		panic(any(err))
	}
	return f
}

func (f *FixedArray[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(f.data) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "get index %d, capacity %d", index, len(f.data))
	}
	return f.data[index], nil
}

func (f *FixedArray[T]) Set(index int, value T) error {
	if index < 0 || index >= len(f.data) {
		return errors.Wrapf(ErrIndexOutOfRange, "set index %d, capacity %d", index, len(f.data))
	}
	f.data[index] = value
	return nil
}

// Len returns the fixed capacity.
func (f *FixedArray[T]) Len() int {
	return len(f.data)
}

func (f *FixedArray[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("STAT_ARR Size: %d [", len(f.data)))
	for i, v := range f.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(v))
	}
	sb.WriteString("]")
	return sb.String()
}
