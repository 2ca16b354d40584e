// Package http exposes the navigation shell over HTTP.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraservotes/console/internal/httputil"
	"github.com/fraservotes/console/internal/navigation/http/dto"
	navigationUseCase "github.com/fraservotes/console/internal/navigation/usecase"
	sessionHTTP "github.com/fraservotes/console/internal/session/http"
	customValidation "github.com/fraservotes/console/internal/validation"
)

// NavigationHandler serves the shell, the logout action and the loading screen.
type NavigationHandler struct {
	useCase       navigationUseCase.NavigationUseCase
	sessionCookie httputil.Cookie
	logger        *slog.Logger
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(
	useCase navigationUseCase.NavigationUseCase,
	sessionCookie httputil.Cookie,
	logger *slog.Logger,
) *NavigationHandler {
	return &NavigationHandler{
		useCase:       useCase,
		sessionCookie: sessionCookie,
		logger:        logger,
	}
}

// ShellHandler handles GET /v1/navigation.
func (h *NavigationHandler) ShellHandler(c *gin.Context) {
	var query dto.ShellQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session := sessionHTTP.GetSession(c.Request.Context())
	shell := h.useCase.Shell(session, query.CurrentPath(), query.Hovered)

	c.JSON(http.StatusOK, dto.MapShellToResponse(shell))
}

// LogoutHandler handles POST /v1/navigation/logout. It always responds with the
// login navigation and clears the session cookie.
func (h *NavigationHandler) LogoutHandler(c *gin.Context) {
	tokenHash, _ := sessionHTTP.GetTokenHash(c.Request.Context())

	// Revocation errors are logged by the use case.
	nav, _ := h.useCase.Logout(c.Request.Context(), tokenHash)

	h.sessionCookie.Clear(c)
	c.JSON(http.StatusOK, dto.LogoutResponse{Navigation: nav})
}

// LoadingHandler handles GET /v1/loading.
func (h *NavigationHandler) LoadingHandler(c *gin.Context) {
	screen := h.useCase.Loading(c.Query("message"))
	c.JSON(http.StatusOK, dto.MapLoadingToResponse(screen))
}
