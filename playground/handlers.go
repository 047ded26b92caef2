package playground

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"gocontainer/dynarray"
	"gocontainer/minheap"
)

type valuesInput struct {
	Values []float64 `json:"values" binding:"required"`
}

type sliceInput struct {
	Values []float64 `json:"values" binding:"required"`
	Start  *int      `json:"start" binding:"required"`
	Length *int      `json:"length" binding:"required"`
}

type heapOutput struct {
	Size      int       `json:"size"`
	Values    []float64 `json:"values"`
	Rendering string    `json:"rendering"`
}

type valueOutput struct {
	Value float64 `json:"value"`
	Size  int     `json:"size"`
}

type arrayOutput struct {
	Values    []float64 `json:"values"`
	Rendering string    `json:"rendering"`
}

type modeOutput struct {
	Modes     []float64 `json:"modes"`
	Frequency int       `json:"frequency"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) errResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, minheap.ErrEmptyHeap):
		status = http.StatusNotFound
	case errors.Is(err, dynarray.ErrIndexOutOfRange):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		level.Warn(s.logger).Log("msg", "request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// bindValues binds a JSON body and enforces the configured element limit.
func (s *Server) bindValues(c *gin.Context, input any, values func() []float64) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	if err := s.validate.Var(values(), fmt.Sprintf("max=%d", s.cfg.MaxElements)); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("at most %d values per request", s.cfg.MaxElements)})
		return false
	}
	return true
}

// heapOutputLocked expects s.mu to be held.
func (s *Server) heapOutputLocked() heapOutput {
	return heapOutput{
		Size:      s.heap.Size(),
		Values:    s.heap.Values(),
		Rendering: s.heap.String(),
	}
}

func arrayOutputOf(a *dynarray.DynamicArray[float64]) arrayOutput {
	return arrayOutput{Values: a.Values(), Rendering: a.String()}
}

func (s *Server) getHeap(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.heapOutputLocked())
}

func (s *Server) addToHeap(c *gin.Context) {
	var input valuesInput
	if !s.bindValues(c, &input, func() []float64 { return input.Values }) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.heap.Size()+len(input.Values) > s.cfg.MaxElements {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("heap is limited to %d values", s.cfg.MaxElements)})
		return
	}
	for _, v := range input.Values {
		s.heap.Add(v)
	}
	c.JSON(http.StatusOK, s.heapOutputLocked())
}

func (s *Server) buildHeap(c *gin.Context) {
	var input valuesInput
	if !s.bindValues(c, &input, func() []float64 { return input.Values }) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.heap.BuildHeap(dynarray.New(input.Values...))
	c.JSON(http.StatusOK, s.heapOutputLocked())
}

func (s *Server) clearHeap(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heap.Clear()
	c.JSON(http.StatusOK, s.heapOutputLocked())
}

func (s *Server) getMin(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.heap.GetMin()
	if err != nil {
		s.errResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, valueOutput{Value: v, Size: s.heap.Size()})
}

func (s *Server) removeMin(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.heap.RemoveMin()
	if err != nil {
		s.errResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, valueOutput{Value: v, Size: s.heap.Size()})
}

// drainHeap empties the heap, streaming each minimum as a server-sent event
// followed by a final done event carrying the count.
func (s *Server) drainHeap(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	count := 0
	for !s.heap.IsEmpty() {
		v, err := s.heap.RemoveMin()
		if err != nil {
			level.Warn(s.logger).Log("msg", "drain stopped", "err", err)
			return
		}
		if err := sse.Encode(c.Writer, sse.Event{Event: "min", Data: v}); err != nil {
			level.Warn(s.logger).Log("msg", "drain stopped", "err", err)
			return
		}
		c.Writer.Flush()
		count++
	}
	if err := sse.Encode(c.Writer, sse.Event{Event: "done", Data: count}); err != nil {
		level.Warn(s.logger).Log("msg", "drain stopped", "err", err)
		return
	}
	c.Writer.Flush()
}

func (s *Server) sortValues(c *gin.Context) {
	var input valuesInput
	if !s.bindValues(c, &input, func() []float64 { return input.Values }) {
		return
	}
	a := dynarray.New(input.Values...)
	minheap.Heapsort(a)
	c.JSON(http.StatusOK, arrayOutputOf(a))
}

func (s *Server) findMode(c *gin.Context) {
	var input valuesInput
	if !s.bindValues(c, &input, func() []float64 { return input.Values }) {
		return
	}
	modes, frequency := dynarray.FindMode(dynarray.New(input.Values...))
	c.JSON(http.StatusOK, modeOutput{Modes: modes.Values(), Frequency: frequency})
}

func (s *Server) sliceValues(c *gin.Context) {
	var input sliceInput
	if !s.bindValues(c, &input, func() []float64 { return input.Values }) {
		return
	}
	out, err := dynarray.New(input.Values...).Slice(*input.Start, *input.Length)
	if err != nil {
		s.errResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, arrayOutputOf(out))
}
