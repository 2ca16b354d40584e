package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fraservotes/console/internal/errors"
	"github.com/fraservotes/console/internal/httputil"
	sessionService "github.com/fraservotes/console/internal/session/service"
	sessionUseCase "github.com/fraservotes/console/internal/session/usecase"
)

const bearerPrefix = "bearer "

// SessionMiddleware resolves the request's session from the session cookie or a
// Bearer Authorization header and stores it in the request context. Requests
// without a usable token proceed as anonymous. Infrastructure failures abort with 500.
func SessionMiddleware(
	useCase sessionUseCase.SessionUseCase,
	tokenService sessionService.TokenService,
	cookie httputil.Cookie,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainToken, ok := presentedToken(c, cookie)
		if !ok {
			c.Next()
			return
		}

		tokenHash := tokenService.HashToken(plainToken)
		ctx := WithTokenHash(c.Request.Context(), tokenHash)

		session, err := useCase.Authenticate(ctx, tokenHash)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Is(err, apperrors.ErrForbidden) {
				logger.Debug("session token rejected", slog.String("error", err.Error()))
				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithSession(ctx, session))

		logger.Debug("session resolved",
			slog.String("user_id", session.UserID().String()),
			slog.String("role", string(session.Role)))

		c.Next()
	}
}

// presentedToken prefers the Authorization header over the cookie.
func presentedToken(c *gin.Context, cookie httputil.Cookie) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token != "" {
			return token, true
		}
	}
	return cookie.Read(c)
}
