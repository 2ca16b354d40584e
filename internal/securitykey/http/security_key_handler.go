// Package http exposes the security key panel over HTTP.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/httputil"
	"github.com/fraservotes/console/internal/notice"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	"github.com/fraservotes/console/internal/securitykey/http/dto"
	securityKeyUseCase "github.com/fraservotes/console/internal/securitykey/usecase"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	sessionHTTP "github.com/fraservotes/console/internal/session/http"
	customValidation "github.com/fraservotes/console/internal/validation"
)

// SecurityKeyHandler serves the security key panel.
type SecurityKeyHandler struct {
	useCase securityKeyUseCase.SecurityKeyUseCase
	logger  *slog.Logger
}

// NewSecurityKeyHandler creates a new security key handler.
func NewSecurityKeyHandler(
	useCase securityKeyUseCase.SecurityKeyUseCase,
	logger *slog.Logger,
) *SecurityKeyHandler {
	return &SecurityKeyHandler{
		useCase: useCase,
		logger:  logger,
	}
}

func (h *SecurityKeyHandler) keyID(c *gin.Context) (uuid.UUID, bool) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid security key ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return keyID, true
}

// guard answers non-superadmin callers with the restricted view before any
// request parsing. It reports whether the handler may continue.
func (h *SecurityKeyHandler) guard(c *gin.Context, denied *notice.Notice) (sessionDomain.Session, bool) {
	session := sessionHTTP.GetSession(c.Request.Context())
	if !securityKeyUseCase.Allowed(session) {
		c.JSON(http.StatusOK, dto.MapViewToResponse(securityKeyUseCase.Restricted(denied)))
		return session, false
	}
	return session, true
}

func (h *SecurityKeyHandler) respond(c *gin.Context, status int, view *securityKeyUseCase.View, err error) {
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(status, dto.MapViewToResponse(view))
}

// ListHandler handles GET /v1/security-keys.
func (h *SecurityKeyHandler) ListHandler(c *gin.Context) {
	session := sessionHTTP.GetSession(c.Request.Context())
	view, err := h.useCase.View(c.Request.Context(), session)
	h.respond(c, http.StatusOK, view, err)
}

// CreateHandler handles POST /v1/security-keys. A registry failure is reported
// as an error notice in a 200 response with the dialog still open.
func (h *SecurityKeyHandler) CreateHandler(c *gin.Context) {
	denied := securityKeyDomain.NoticeAccessDenied
	session, ok := h.guard(c, &denied)
	if !ok {
		return
	}

	var req dto.CreateSecurityKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	view, err := h.useCase.Create(c.Request.Context(), session, input)

	status := http.StatusOK
	if err == nil && view.Notice != nil && view.Notice.Kind == notice.KindSuccess {
		status = http.StatusCreated
	}
	h.respond(c, status, view, err)
}

// SelectRemovalHandler handles POST /v1/security-keys/:id/removal.
func (h *SecurityKeyHandler) SelectRemovalHandler(c *gin.Context) {
	session, ok := h.guard(c, nil)
	if !ok {
		return
	}

	keyID, ok := h.keyID(c)
	if !ok {
		return
	}

	view, err := h.useCase.SelectForRemoval(c.Request.Context(), session, keyID)
	h.respond(c, http.StatusOK, view, err)
}

// CancelRemovalHandler handles DELETE /v1/security-keys/removal.
func (h *SecurityKeyHandler) CancelRemovalHandler(c *gin.Context) {
	session := sessionHTTP.GetSession(c.Request.Context())
	view, err := h.useCase.CancelRemoval(c.Request.Context(), session)
	h.respond(c, http.StatusOK, view, err)
}

// ConfirmRemovalHandler handles POST /v1/security-keys/:id/removal/confirm.
func (h *SecurityKeyHandler) ConfirmRemovalHandler(c *gin.Context) {
	session, ok := h.guard(c, nil)
	if !ok {
		return
	}

	keyID, ok := h.keyID(c)
	if !ok {
		return
	}

	view, err := h.useCase.ConfirmRemoval(c.Request.Context(), session, keyID)
	h.respond(c, http.StatusOK, view, err)
}
