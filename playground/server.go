// Package playground serves one float64 min-heap and the dynamic array
// utilities over HTTP for manual experiments.
//
// The heap and the arrays are not safe for concurrent use; the server
// serializes every request that touches the heap.
package playground

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"gocontainer/minheap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg      Config
	logger   log.Logger
	limiter  *slideWindowsLimiter
	validate *validator.Validate
	engine   *gin.Engine

	mu   sync.Mutex
	heap *minheap.MinHeap[float64]
}

type Option func(s *Server)

// WithClock replaces the clock used by the rate limiter.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.limiter = newSlideWindowsLimiter(s.cfg.Limiter, withLimiterClock(now))
	}
}

// WithInitialValues seeds the heap.
func WithInitialValues(values ...float64) Option {
	return func(s *Server) {
		for _, v := range values {
			s.heap.Add(v)
		}
	}
}

func New(cfg Config, logger log.Logger, options ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		limiter:  newSlideWindowsLimiter(cfg.Limiter),
		validate: validator.New(),
		heap:     minheap.New[float64](),
	}
	for i := 0; i < len(options); i++ {
		options[i](s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.logRequests(), s.rateLimit())
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/heap", s.getHeap)
	s.engine.POST("/heap", s.addToHeap)
	s.engine.PUT("/heap", s.buildHeap)
	s.engine.DELETE("/heap", s.clearHeap)
	s.engine.GET("/heap/min", s.getMin)
	s.engine.DELETE("/heap/min", s.removeMin)
	s.engine.GET("/heap/drain", s.drainHeap)

	s.engine.POST("/sort", s.sortValues)
	s.engine.POST("/mode", s.findMode)
	s.engine.POST("/slice", s.sliceValues)
}

// Handler returns the engine, wrapped for h2c when enabled.
func (s *Server) Handler() http.Handler {
	if !s.cfg.H2C {
		return s.engine
	}
	h2s := &http2.Server{}
	return h2c.NewHandler(s.engine, h2s)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddress,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	level.Info(s.logger).Log("msg", "playground listening", "addr", s.cfg.ListenAddress, "h2c", s.cfg.H2C)

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve playground")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown playground")
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "serve playground")
	}
	return nil
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		logger := level.Debug(s.logger)
		if status >= http.StatusInternalServerError {
			logger = level.Warn(s.logger)
		}
		logger.Log("method", c.Request.Method, "path", c.Request.URL.Path, "status", status, "duration", time.Since(start))
	}
}
