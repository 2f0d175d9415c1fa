package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/njchilds90/goquadratic/internal/config"
)

const shutdownTimeout = 10 * time.Second

// RegisterRoutes registers the tool endpoints on rg.
//
// Endpoints:
//
//	POST /tool    - execute a tool call
//	GET  /schema  - tool schema for agent registration
//	GET  /health  - liveness check
//	GET  /plot    - render the parabola as png, svg or pdf
func RegisterRoutes(rg gin.IRoutes, h *Handlers) {
	rg.POST("/tool", h.HandleTool)
	rg.GET("/schema", h.HandleSchema)
	rg.GET("/health", h.HandleHealth)
	rg.GET("/plot", h.HandlePlot)
}

// NewRouter builds the gin engine with recovery, request logging, the
// tool routes and GET /metrics.
func NewRouter(cfg config.Config, logger *slog.Logger, metrics *Metrics) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), requestLogger(logger))
	h := NewHandlers(cfg, logger, metrics)
	RegisterRoutes(router, h)
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(cfg, logger, NewMetrics()),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("goquadratic MCP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
