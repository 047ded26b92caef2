package playground

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slideWindowsLimiter admits at most permitsPerWindow requests in any
// window. The window is split into sub windows; when time moves past a sub
// window its count is released.
type slideWindowsLimiter struct {
	lock             sync.Mutex
	permitsPerWindow int64
	subWindowSize    int64
	windows          []int64
	totalCount       int64

	// absolute index of the latest sub window seen
	current int64
	now     func() time.Time
}

type limiterOption func(l *slideWindowsLimiter)

func withLimiterClock(now func() time.Time) limiterOption {
	return func(l *slideWindowsLimiter) {
		l.now = now
	}
}

func newSlideWindowsLimiter(cfg LimiterConfig, options ...limiterOption) *slideWindowsLimiter {
	subWindows := cfg.SubWindows
	if subWindows <= 0 {
		subWindows = 1
	}
	l := &slideWindowsLimiter{
		permitsPerWindow: cfg.MaxRequests,
		subWindowSize:    cfg.Window.Nanoseconds() / subWindows,
		windows:          make([]int64, subWindows),
		now:              time.Now,
	}
	if l.subWindowSize <= 0 {
		l.subWindowSize = 1
	}
	for i := 0; i < len(options); i++ {
		options[i](l)
	}
	l.current = l.now().UnixNano() / l.subWindowSize
	return l
}

func (l *slideWindowsLimiter) TryAcquire() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	index := l.now().UnixNano() / l.subWindowSize
	l.expire(index)
	if l.totalCount >= l.permitsPerWindow {
		return false
	}
	l.windows[index%int64(len(l.windows))]++
	l.totalCount++
	return true
}

// expire releases every sub window between current and index.
func (l *slideWindowsLimiter) expire(index int64) {
	if index <= l.current {
		return
	}
	n := int64(len(l.windows))
	outdated := index - l.current
	if outdated > n {
		outdated = n
	}
	for i := int64(1); i <= outdated; i++ {
		slot := (l.current + i) % n
		l.totalCount -= l.windows[slot]
		l.windows[slot] = 0
	}
	l.current = index
}

// rateLimit rejects requests once the window is full. A limit of zero
// disables the middleware.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter.permitsPerWindow > 0 && !s.limiter.TryAcquire() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
