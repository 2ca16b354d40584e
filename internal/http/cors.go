package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// The console frontend only reads and posts panel state, so PUT and PATCH stay closed.
var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
	corsHeaders = []string{"Authorization", "Content-Type", "X-Request-Id"}
)

// createCORSMiddleware admits a console UI hosted on another origin. Credentials
// are allowed so the session and onboarding device cookies travel with each
// request, which rules out the "*" origin. Returns nil when disabled or when no
// usable origin remains.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins, logger)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no usable origins configured, skipping")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// parseOrigins splits a comma-separated origin list, dropping blanks and the
// wildcard, which browsers refuse on credentialed requests.
func parseOrigins(raw string, logger *slog.Logger) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		switch origin {
		case "":
			continue
		case "*":
			logger.Warn("ignoring wildcard CORS origin, credentials require explicit origins")
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
