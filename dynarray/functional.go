package dynarray

// Map returns a new array holding fn applied to each element in order.
// It is a function rather than a method because methods cannot introduce
// the result type parameter.
func Map[T, U any](a *DynamicArray[T], fn func(T) U) *DynamicArray[U] {
	out := New[U]()
	for i := 0; i < a.size; i++ {
		out.Append(fn(a.load(i)))
	}
	return out
}

// Filter returns a new array with the elements for which keep returns true.
func (a *DynamicArray[T]) Filter(keep func(T) bool) *DynamicArray[T] {
	out := New[T]()
	for i := 0; i < a.size; i++ {
		v := a.load(i)
		if keep(v) {
			out.Append(v)
		}
	}
	return out
}

// FilterValue drops an element only when fn returns the boolean false.
// Any other result, including nil, 0 and "", keeps it.
func (a *DynamicArray[T]) FilterValue(fn func(T) any) *DynamicArray[T] {
	return a.Filter(func(v T) bool {
		b, ok := fn(v).(bool)
		return !ok || b
	})
}

// Reduce folds the elements left to right with fn.
//
// Without an initializer the fold starts from the first two elements and a
// single-element array is returned as is without calling fn. With an
// initializer the fold starts from (initializer, first element). An empty
// array yields the initializer, or the zero value when none is given. Only
// the first initializer is used.
func (a *DynamicArray[T]) Reduce(fn func(acc, v T) T, initializer ...T) T {
	var acc T
	hasInit := len(initializer) > 0
	if hasInit {
		acc = initializer[0]
	}
	if a.size == 0 {
		return acc
	}
	start := 0
	if !hasInit {
		if a.size == 1 {
			return a.load(0)
		}
		acc = a.load(0)
		start = 1
	}
	for i := start; i < a.size; i++ {
		acc = fn(acc, a.load(i))
	}
	return acc
}
