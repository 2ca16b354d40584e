package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fraservotes/console/internal/httputil"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	"github.com/fraservotes/console/internal/session/http/dto"
	sessionUseCase "github.com/fraservotes/console/internal/session/usecase"
	customValidation "github.com/fraservotes/console/internal/validation"
)

// SessionHandler serves login, session lookup and logout.
type SessionHandler struct {
	useCase      sessionUseCase.SessionUseCase
	routeContext sessionDomain.RouteContext
	cookie       httputil.Cookie
	logger       *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(
	useCase sessionUseCase.SessionUseCase,
	routeContext sessionDomain.RouteContext,
	cookie httputil.Cookie,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		useCase:      useCase,
		routeContext: routeContext,
		cookie:       cookie,
		logger:       logger,
	}
}

// LoginHandler handles POST /v1/session. On success the plain token is returned
// in the body and set as the session cookie.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.useCase.Login(c.Request.Context(), &sessionDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.cookie.Write(c, output.PlainToken, time.Until(output.ExpiresAt))

	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token:     output.PlainToken,
		ExpiresAt: output.ExpiresAt,
		Session:   dto.MapSessionToResponse(output.Session, h.routeContext),
	})
}

// GetHandler handles GET /v1/session. Anonymous requests get an anonymous session, not 401.
func (h *SessionHandler) GetHandler(c *gin.Context) {
	session := GetSession(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapSessionToResponse(session, h.routeContext))
}

// LogoutHandler handles DELETE /v1/session.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if tokenHash, ok := GetTokenHash(c.Request.Context()); ok {
		if err := h.useCase.Logout(c.Request.Context(), tokenHash); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
	}

	h.cookie.Clear(c)
	c.Status(http.StatusNoContent)
}
