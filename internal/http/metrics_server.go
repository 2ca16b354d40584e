package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fraservotes/console/internal/metrics"
)

const (
	metricsReadHeaderTimeout = 5 * time.Second
	metricsWriteTimeout      = 15 * time.Second
	metricsIdleTimeout       = 60 * time.Second
)

// MetricsServer serves the Prometheus scrape endpoint on its own port so the
// console API never exposes operational counters to volunteers' browsers.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates the scrape server. With a nil provider every path,
// /metrics included, answers 404.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())

	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}
	router.NoRoute(func(c *gin.Context) {
		logger.Debug("metrics server: unknown path", slog.String("path", c.Request.URL.Path))
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return &MetricsServer{
		server: &http.Server{
			Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
			Handler:           router,
			ReadHeaderTimeout: metricsReadHeaderTimeout,
			WriteTimeout:      metricsWriteTimeout,
			IdleTimeout:       metricsIdleTimeout,
		},
		logger: logger,
	}
}

// Addr is the listen address.
func (s *MetricsServer) Addr() string {
	return s.server.Addr
}

// GetHandler returns the router, for tests.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks serving scrapes until Shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("metrics server listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server on %s: %w", s.server.Addr, err)
	}
	return nil
}

// Shutdown stops accepting scrapes and waits for in-flight ones.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("metrics server stopping")
	return s.server.Shutdown(ctx)
}
