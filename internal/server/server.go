/*
Package server provides hiatus detection as an HTTP service.

	POST /api/hiatus   detect hiatus in a text, answer JSON, CSV or HTML
	GET  /healthz      liveness probe

Rendered answers are cached for a while, keyed by the request's text and
options.
*/
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npillmayer/hiatus"
	"github.com/npillmayer/hiatus/internal/config"
	"github.com/npillmayer/hiatus/report"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	cache "github.com/patrickmn/go-cache"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxBodySize is the maximum size of a request body in bytes.
const MaxBodySize = 4 << 20

// Request is the body of a detection request.
type Request struct {
	Text            string `json:"text" binding:"required"`
	MaxLookahead    *int   `json:"max_lookahead"`
	IotaAsDiphthong *bool  `json:"iota_as_diphthong"`
	Format          string `json:"format"` // json (default), csv or html
}

var contentTypes = map[string]string{
	"json": "application/json; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
	"html": "text/html; charset=utf-8",
}

// Server is an HTTP server for hiatus detection.
type Server struct {
	cfg     config.Config
	engine  *gin.Engine
	results *cache.Cache
}

type answer struct {
	body  []byte
	count int
}

// New creates a server. Detection options of requests default to the ones
// of cfg.
func New(cfg config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:     cfg,
		engine:  gin.New(),
		results: cache.New(10*time.Minute, 20*time.Minute),
	}
	s.engine.Use(gin.Recovery(), traceRequests())
	s.engine.POST("/api/hiatus", s.detect)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	T().Infof("server: listening on %s", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	}
}

func (s *Server) detect(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "malformed request",
			"details": err.Error(),
		})
		return
	}
	cfg := s.cfg
	if req.MaxLookahead != nil {
		cfg.MaxLookahead = *req.MaxLookahead
	}
	if req.IotaAsDiphthong != nil {
		cfg.IotaAsDiphthong = req.IotaAsDiphthong
	}
	if cfg.MaxLookahead < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "malformed request",
			"details": config.ErrInvalidLookahead.Error(),
		})
		return
	}
	format := req.Format
	if format == "" {
		format = "json"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "malformed request",
			"details": fmt.Sprintf("unknown format %q", req.Format),
		})
		return
	}
	key := cacheKey(req.Text, format, cfg)
	if v, found := s.results.Get(key); found {
		a := v.(answer)
		c.Header("X-Hiatus-Cache", "hit")
		c.Header("X-Hiatus-Count", strconv.Itoa(a.count))
		c.Data(http.StatusOK, contentType, a.body)
		return
	}
	res := hiatus.Detect(req.Text, cfg.Options()...)
	var buf bytes.Buffer
	var err error
	switch format {
	case "csv":
		err = report.CSV(&buf, res)
	case "html":
		err = report.HTML(&buf, res, report.HTMLOptions{})
	default:
		err = report.JSON(&buf, res)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a := answer{body: buf.Bytes(), count: len(res.Occurrences)}
	s.results.Set(key, a, cache.DefaultExpiration)
	c.Header("X-Hiatus-Cache", "miss")
	c.Header("X-Hiatus-Count", strconv.Itoa(a.count))
	c.Data(http.StatusOK, contentType, a.body)
}

func cacheKey(text, format string, cfg config.Config) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%t|", format, cfg.MaxLookahead, cfg.Iota())
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// traceRequests traces every request after it has been handled.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		T().P("status", c.Writer.Status()).Infof("server: %s %s (%v)",
			c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}
