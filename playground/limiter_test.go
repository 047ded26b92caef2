package playground

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlideWindows(t *testing.T) {
	now := time.Unix(0, 0)
	l := newSlideWindowsLimiter(LimiterConfig{
		Window:      time.Second,
		SubWindows:  4,
		MaxRequests: 3,
	}, withLimiterClock(func() time.Time { return now }))

	assert.True(t, l.TryAcquire())
	now = now.Add(250 * time.Millisecond)
	assert.True(t, l.TryAcquire())
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire())

	// the first sub window falls out of the window
	now = now.Add(750 * time.Millisecond)
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire())

	// the second one too
	now = now.Add(250 * time.Millisecond)
	assert.True(t, l.TryAcquire())
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire())

	// far in the future everything is released
	now = now.Add(time.Hour)
	assert.True(t, l.TryAcquire())
	assert.Equal(t, int64(1), l.totalCount)
}

func TestConcurrencyTryAcquire(t *testing.T) {
	const times = 1000
	l := newSlideWindowsLimiter(LimiterConfig{
		Window:      time.Hour,
		SubWindows:  32,
		MaxRequests: 100,
	})

	var passed int64
	group := sync.WaitGroup{}
	group.Add(times)
	for i := 0; i < times; i++ {
		go func() {
			defer group.Done()
			if l.TryAcquire() {
				atomic.AddInt64(&passed, 1)
			}
		}()
	}
	group.Wait()
	assert.Equal(t, int64(100), passed)
}
