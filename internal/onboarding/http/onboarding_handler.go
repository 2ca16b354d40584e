// Package http exposes the onboarding flow over HTTP.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/httputil"
	"github.com/fraservotes/console/internal/onboarding/http/dto"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
)

// deviceCookieMaxAge keeps the device id for a full event season.
const deviceCookieMaxAge = 365 * 24 * time.Hour

// OnboardingHandler serves the onboarding flow of the requesting device.
type OnboardingHandler struct {
	useCase      onboardingUseCase.OnboardingUseCase
	deviceCookie httputil.Cookie
	logger       *slog.Logger
}

// NewOnboardingHandler creates a new onboarding handler.
func NewOnboardingHandler(
	useCase onboardingUseCase.OnboardingUseCase,
	deviceCookie httputil.Cookie,
	logger *slog.Logger,
) *OnboardingHandler {
	return &OnboardingHandler{
		useCase:      useCase,
		deviceCookie: deviceCookie,
		logger:       logger,
	}
}

// deviceID returns the device id from its cookie, issuing a new one when absent or malformed.
func (h *OnboardingHandler) deviceID(c *gin.Context) (uuid.UUID, error) {
	if raw, ok := h.deviceCookie.Read(c); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id, nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, err
	}
	h.deviceCookie.Write(c, id.String(), deviceCookieMaxAge)
	return id, nil
}

func (h *OnboardingHandler) serve(
	c *gin.Context,
	action func(ctx context.Context, deviceID uuid.UUID) (*onboardingUseCase.View, error),
) {
	deviceID, err := h.deviceID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	view, err := action(c.Request.Context(), deviceID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapViewToResponse(view))
}

// GetHandler handles GET /v1/onboarding.
func (h *OnboardingHandler) GetHandler(c *gin.Context) {
	h.serve(c, h.useCase.Start)
}

// NextHandler handles POST /v1/onboarding/next.
func (h *OnboardingHandler) NextHandler(c *gin.Context) {
	h.serve(c, h.useCase.Next)
}

// SkipHandler handles POST /v1/onboarding/skip.
func (h *OnboardingHandler) SkipHandler(c *gin.Context) {
	h.serve(c, h.useCase.Skip)
}

// CloseHandler handles POST /v1/onboarding/close.
func (h *OnboardingHandler) CloseHandler(c *gin.Context) {
	h.serve(c, h.useCase.Close)
}
