package dynarray

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendGrowsByDoubling(t *testing.T) {
	a := New[int]()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 4, a.Cap())

	lastCap := a.Cap()
	for i := 0; i < 100; i++ {
		a.Append(i)
		assert.Equal(t, i+1, a.Len())
		if a.Cap() != lastCap {
			assert.Equal(t, lastCap*2, a.Cap(), "capacity only doubles on append")
			lastCap = a.Cap()
		}
	}
	assert.Equal(t, 128, a.Cap())
	for i := 0; i < 100; i++ {
		v, err := a.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	a := New(1, 2, 3)

	require.NoError(t, a.Set(1, 20))
	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	// index 3 is inside the capacity but past the size
	for _, index := range []int{-1, 3, 4} {
		_, err := a.Get(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "get %d", index)
		assert.True(t, errors.Is(a.Set(index, 0), ErrIndexOutOfRange), "set %d", index)
	}
}

func TestZeroValuesAreElements(t *testing.T) {
	a := New(0, 0, 0)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{0, 0, 0}, a.Values())

	b := New(false, true, false)
	assert.Equal(t, 3, b.Len())
}

func TestResize(t *testing.T) {
	a := New(1, 2, 3)

	for _, capacity := range []int{2, 0, -3} {
		a.Resize(capacity)
		assert.Equal(t, 4, a.Cap(), "resize to %d is ignored", capacity)
	}

	a.Resize(3)
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []int{1, 2, 3}, a.Values())

	a.Append(4)
	assert.Equal(t, 6, a.Cap())

	a.Resize(50)
	assert.Equal(t, 50, a.Cap())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Values())
}

func TestInsertAt(t *testing.T) {
	a := New(1, 2, 3, 4)
	require.Equal(t, 4, a.Cap())

	require.NoError(t, a.InsertAt(0, 0))
	assert.Equal(t, 8, a.Cap())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Values())

	require.NoError(t, a.InsertAt(2, 9))
	assert.Equal(t, []int{0, 1, 9, 2, 3, 4}, a.Values())

	require.NoError(t, a.InsertAt(a.Len(), 5))
	assert.Equal(t, []int{0, 1, 9, 2, 3, 4, 5}, a.Values())

	for _, index := range []int{-1, 8, 100} {
		err := a.InsertAt(index, 0)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "insert %d", index)
	}
	assert.Equal(t, 7, a.Len())

	empty := New[string]()
	require.NoError(t, empty.InsertAt(0, "x"))
	assert.Equal(t, []string{"x"}, empty.Values())
}

func TestRemoveAt(t *testing.T) {
	a := New(1, 2, 3, 4, 5)

	require.NoError(t, a.RemoveAt(1))
	assert.Equal(t, []int{1, 3, 4, 5}, a.Values())
	require.NoError(t, a.RemoveAt(3))
	assert.Equal(t, []int{1, 3, 4}, a.Values())
	require.NoError(t, a.RemoveAt(0))
	assert.Equal(t, []int{3, 4}, a.Values())

	for _, index := range []int{-1, 2, 10} {
		err := a.RemoveAt(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "remove %d", index)
	}

	empty := New[int]()
	assert.True(t, errors.Is(empty.RemoveAt(0), ErrIndexOutOfRange))
}

func TestRemoveAtShrinks(t *testing.T) {
	a := New[int]()
	for i := 0; i < 20; i++ {
		a.Append(i)
	}
	require.Equal(t, 32, a.Cap())

	// size 8 is not below a quarter of 32, so nothing shrinks yet
	for a.Len() > 7 {
		require.NoError(t, a.RemoveAt(0))
		assert.Equal(t, 32, a.Cap())
	}

	// size 7 before removal: shrink to 2*7
	require.NoError(t, a.RemoveAt(0))
	assert.Equal(t, 14, a.Cap())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, []int{14, 15, 16, 17, 18, 19}, a.Values())

	for a.Len() > 3 {
		require.NoError(t, a.RemoveAt(0))
		assert.Equal(t, 14, a.Cap())
	}

	// 2*3 is below the floor of 10
	require.NoError(t, a.RemoveAt(0))
	assert.Equal(t, 10, a.Cap())

	for !a.IsEmpty() {
		require.NoError(t, a.RemoveAt(0))
		assert.Equal(t, 10, a.Cap())
	}
}

func TestSlice(t *testing.T) {
	a := New(1, 2, 3, 4, 5)

	s, err := a.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, s.Values())

	full, err := a.Slice(0, a.Len())
	require.NoError(t, err)
	assert.Equal(t, a.Values(), full.Values())

	none, err := a.Slice(4, 0)
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())

	require.NoError(t, s.Set(0, 100))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Values(), "slice is independent of its source")

	for _, tc := range []struct{ start, length int }{
		{3, 3},
		{5, 0},
		{-1, 1},
		{0, -1},
		{0, 6},
	} {
		_, err := a.Slice(tc.start, tc.length)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "slice(%d, %d)", tc.start, tc.length)
	}

	_, err = New[int]().Slice(0, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestMerge(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)
	a.Merge(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.Values())
	assert.Equal(t, 8, a.Cap())
	assert.Equal(t, []int{4, 5, 6}, b.Values())

	c := New(1, 2, 3, 4)
	c.Merge(New(5, 6, 7, 8, 9, 10, 11, 12, 13))
	assert.Equal(t, 13, c.Len())
	assert.Equal(t, 16, c.Cap())

	d := New(1, 2)
	d.Merge(d)
	assert.Equal(t, []int{1, 2, 1, 2}, d.Values())
	assert.Equal(t, 4, d.Cap())

	e := New(1)
	e.Merge(New[int]())
	assert.Equal(t, []int{1}, e.Values())
}

func TestClone(t *testing.T) {
	a := New(1, 2, 3)
	b := a.Clone()
	require.NoError(t, b.Set(0, 9))
	b.Append(4)
	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.Equal(t, []int{9, 2, 3, 4}, b.Values())
}

func TestString(t *testing.T) {
	assert.Equal(t, "DYN_ARR Size/Cap: 2/4 [1, 2]", New(1, 2).String())
	assert.Equal(t, "DYN_ARR Size/Cap: 0/4 []", New[int]().String())
}
