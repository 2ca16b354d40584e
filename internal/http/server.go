// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/config"
	"github.com/fraservotes/console/internal/metrics"
	navigationHTTP "github.com/fraservotes/console/internal/navigation/http"
	onboardingHTTP "github.com/fraservotes/console/internal/onboarding/http"
	securityKeyHTTP "github.com/fraservotes/console/internal/securitykey/http"
	sessionHTTP "github.com/fraservotes/console/internal/session/http"
)

// Server represents the HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Handlers groups the feature handlers and per-route middleware mounted under /v1.
type Handlers struct {
	Session     *sessionHTTP.SessionHandler
	Navigation  *navigationHTTP.NavigationHandler
	Onboarding  *onboardingHTTP.OnboardingHandler
	SecurityKey *securityKeyHTTP.SecurityKeyHandler

	// SessionMiddleware resolves the caller's session for every /v1 route.
	SessionMiddleware gin.HandlerFunc
	// LoginRateLimit guards POST /v1/session. Nil disables it.
	LoginRateLimit gin.HandlerFunc
}

// NewServer creates a new HTTP server.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with global middleware and all routes.
func (s *Server) SetupRouter(cfg *config.Config, h Handlers, metricsProvider *metrics.Provider) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if h.SessionMiddleware != nil {
		v1.Use(h.SessionMiddleware)
	}

	if h.Session != nil {
		login := []gin.HandlerFunc{h.Session.LoginHandler}
		if h.LoginRateLimit != nil {
			login = append([]gin.HandlerFunc{h.LoginRateLimit}, login...)
		}
		v1.POST("/session", login...)
		v1.GET("/session", h.Session.GetHandler)
		v1.DELETE("/session", h.Session.LogoutHandler)
	}

	if h.Navigation != nil {
		v1.GET("/navigation", h.Navigation.ShellHandler)
		v1.POST("/navigation/logout", h.Navigation.LogoutHandler)
		v1.GET("/loading", h.Navigation.LoadingHandler)
	}

	if h.Onboarding != nil {
		onboarding := v1.Group("/onboarding")
		{
			onboarding.GET("", h.Onboarding.GetHandler)
			onboarding.POST("/next", h.Onboarding.NextHandler)
			onboarding.POST("/skip", h.Onboarding.SkipHandler)
			onboarding.POST("/close", h.Onboarding.CloseHandler)
		}
	}

	if h.SecurityKey != nil {
		keys := v1.Group("/security-keys")
		{
			keys.GET("", h.SecurityKey.ListHandler)
			keys.POST("", h.SecurityKey.CreateHandler)
			keys.DELETE("/removal", h.SecurityKey.CancelRemovalHandler)
			keys.POST("/:id/removal", h.SecurityKey.SelectRemovalHandler)
			keys.POST("/:id/removal/confirm", h.SecurityKey.ConfirmRemovalHandler)
		}
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness without touching dependencies.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness based on database reachability.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	components := gin.H{"database": "ok"}
	if s.db == nil || s.db.PingContext(ctx) != nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
