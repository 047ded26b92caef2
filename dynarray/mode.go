package dynarray

// FindMode returns the most frequent values of an array whose equal values
// are contiguous (sorted ascending or descending), and their frequency.
// Values tied for the longest run are all returned, in run order.
func FindMode[T comparable](a *DynamicArray[T]) (*DynamicArray[T], int) {
	modes := New[T]()
	if a.size == 0 {
		return modes, 0
	}

	// best counts equal adjacent pairs in the longest run seen so far
	best, matches := -1, 0
	for i := 0; i < a.size; i++ {
		v := a.load(i)
		if i+1 < a.size && v == a.load(i+1) {
			matches++
			continue
		}
		switch {
		case matches > best:
			best = matches
			modes = New(v)
		case matches == best:
			modes.Append(v)
		}
		matches = 0
	}
	return modes, best + 1
}
