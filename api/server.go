// Package api serves simulations over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rustyeddy/survival/pkg/id"
	"github.com/rustyeddy/survival/sim"
	"github.com/rustyeddy/survival/worker"
	"go.uber.org/zap"
)

// Doer answers one request. *worker.Pool satisfies it.
type Doer interface {
	Do(ctx context.Context, req worker.Request) worker.Response
}

type Options struct {
	// Defaults fill any input field the request leaves out.
	Defaults sim.Inputs
	// Timeout bounds a single simulation request. Zero means no limit
	// beyond the client connection.
	Timeout  time.Duration
	Logger   *zap.Logger
	Gatherer prometheus.Gatherer
}

type Server struct {
	pool     Doer
	defaults sim.Inputs
	timeout  time.Duration
	log      *zap.Logger
	gatherer prometheus.Gatherer
}

func NewServer(pool Doer, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Server{
		pool:     pool,
		defaults: opts.Defaults,
		timeout:  opts.Timeout,
		log:      opts.Logger,
		gatherer: opts.Gatherer,
	}
}

// Router builds a gin engine with recovery, request logging and every
// route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", s.Simulate)
	}
	router.GET("/healthz", s.Health)
	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}

// Simulate runs one request and returns the Response envelope. Engine
// failures are 422 with ok=false; the body is still tagged with the id.
func (s *Server) Simulate(c *gin.Context) {
	var body simulateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqID := body.ID
	if reqID == "" {
		reqID = id.New()
	}

	payload := body.inputsPayload
	if body.Inputs != nil {
		payload = *body.Inputs
	}
	in, err := payload.apply(s.defaults)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, worker.Response{ID: reqID, OK: false, Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp := s.pool.Do(ctx, worker.Request{ID: reqID, Inputs: in})
	if !resp.OK {
		s.log.Warn("simulation failed", zap.String("id", resp.ID), zap.String("error", resp.Error))
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
