package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fraservotes/console/internal/database"
	"github.com/fraservotes/console/internal/httputil"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	sessionHTTP "github.com/fraservotes/console/internal/session/http"
	sessionRepository "github.com/fraservotes/console/internal/session/repository"
	sessionService "github.com/fraservotes/console/internal/session/service"
	sessionUseCase "github.com/fraservotes/console/internal/session/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() sessionService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = sessionService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the session token service.
func (c *Container) TokenService() sessionService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = sessionService.NewTokenService()
	})
	return c.tokenService
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (sessionUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// TokenRepository returns the session token repository based on database driver.
func (c *Container) TokenRepository() (sessionUseCase.TokenRepository, error) {
	var err error
	c.tokenRepositoryInit.Do(func() {
		c.tokenRepository, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepository"]; exists {
		return nil, storedErr
	}
	return c.tokenRepository, nil
}

// SessionUseCase returns the session use case.
func (c *Container) SessionUseCase() (sessionUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// SessionHandler returns the session HTTP handler.
func (c *Container) SessionHandler() (*sessionHTTP.SessionHandler, error) {
	var err error
	c.sessionHandlerInit.Do(func() {
		c.sessionHandler, err = c.initSessionHandler()
		if err != nil {
			c.initErrors["sessionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.sessionHandler, nil
}

// SessionMiddleware returns the middleware that resolves the caller's session.
func (c *Container) SessionMiddleware() (gin.HandlerFunc, error) {
	useCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session middleware: %w", err)
	}

	return sessionHTTP.SessionMiddleware(useCase, c.TokenService(), c.SessionCookie(), c.Logger()), nil
}

// LoginRateLimitMiddleware returns the per-IP login limiter, or nil when disabled.
func (c *Container) LoginRateLimitMiddleware() gin.HandlerFunc {
	if !c.config.RateLimitLoginEnabled {
		return nil
	}

	return sessionHTTP.LoginRateLimitMiddleware(
		c.ctx,
		c.config.RateLimitLoginRequestsPerSec,
		c.config.RateLimitLoginBurst,
		c.Logger(),
	)
}

// SessionCookie describes the cookie carrying the plain session token.
func (c *Container) SessionCookie() httputil.Cookie {
	return httputil.Cookie{Name: c.config.SessionCookieName, Secure: c.config.SessionCookieSecure}
}

// RouteContext returns the deployment-level flags used to derive capabilities.
func (c *Container) RouteContext() sessionDomain.RouteContext {
	return sessionDomain.RouteContext{VotingOpen: c.config.VotingOpen}
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (sessionUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return sessionRepository.NewPostgreSQLUserRepository(db), nil
	case database.DriverMySQL:
		return sessionRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenRepository creates the session token repository based on the database driver.
func (c *Container) initTokenRepository() (sessionUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return sessionRepository.NewPostgreSQLTokenRepository(db), nil
	case database.DriverMySQL:
		return sessionRepository.NewMySQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (sessionUseCase.SessionUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for session use case: %w", err)
	}

	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for session use case: %w", err)
	}

	tokenRepository, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for session use case: %w", err)
	}

	baseUseCase := sessionUseCase.NewSessionUseCase(
		c.config,
		txManager,
		userRepository,
		tokenRepository,
		c.PasswordService(),
		c.TokenService(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
		}
		return sessionUseCase.NewSessionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSessionHandler creates the session HTTP handler.
func (c *Container) initSessionHandler() (*sessionHTTP.SessionHandler, error) {
	useCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}

	return sessionHTTP.NewSessionHandler(useCase, c.RouteContext(), c.SessionCookie(), c.Logger()), nil
}
