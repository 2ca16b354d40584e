package app

import (
	"fmt"
	"time"

	"github.com/fraservotes/console/internal/database"
	securityKeyHTTP "github.com/fraservotes/console/internal/securitykey/http"
	securityKeyRepository "github.com/fraservotes/console/internal/securitykey/repository"
	securityKeyUseCase "github.com/fraservotes/console/internal/securitykey/usecase"
)

// removalCleanupInterval is how often unconfirmed removals are evicted.
const removalCleanupInterval = time.Minute

// SecurityKeyRepository returns the security key registry based on database driver.
func (c *Container) SecurityKeyRepository() (securityKeyUseCase.Registry, error) {
	var err error
	c.securityKeyRepositoryInit.Do(func() {
		c.securityKeyRepository, err = c.initSecurityKeyRepository()
		if err != nil {
			c.initErrors["securityKeyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["securityKeyRepository"]; exists {
		return nil, storedErr
	}
	return c.securityKeyRepository, nil
}

// SecurityKeyUseCase returns the security key panel use case.
func (c *Container) SecurityKeyUseCase() (securityKeyUseCase.SecurityKeyUseCase, error) {
	var err error
	c.securityKeyUseCaseInit.Do(func() {
		c.securityKeyUseCase, err = c.initSecurityKeyUseCase()
		if err != nil {
			c.initErrors["securityKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["securityKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.securityKeyUseCase, nil
}

// SecurityKeyHandler returns the security key HTTP handler.
func (c *Container) SecurityKeyHandler() (*securityKeyHTTP.SecurityKeyHandler, error) {
	var err error
	c.securityKeyHandlerInit.Do(func() {
		c.securityKeyHandler, err = c.initSecurityKeyHandler()
		if err != nil {
			c.initErrors["securityKeyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["securityKeyHandler"]; exists {
		return nil, storedErr
	}
	return c.securityKeyHandler, nil
}

// initSecurityKeyRepository creates the security key repository based on the database driver.
func (c *Container) initSecurityKeyRepository() (securityKeyUseCase.Registry, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for security key repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return securityKeyRepository.NewPostgreSQLSecurityKeyRepository(db), nil
	case database.DriverMySQL:
		return securityKeyRepository.NewMySQLSecurityKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSecurityKeyUseCase creates the security key use case with all its dependencies.
func (c *Container) initSecurityKeyUseCase() (securityKeyUseCase.SecurityKeyUseCase, error) {
	registry, err := c.SecurityKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get security key repository for security key use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for security key use case: %w", err)
	}

	baseUseCase := securityKeyUseCase.NewSecurityKeyUseCase(
		c.ctx,
		registry,
		c.config.SecurityKeyRemovalTTL,
		removalCleanupInterval,
		businessMetrics,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		return securityKeyUseCase.NewSecurityKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSecurityKeyHandler creates the security key HTTP handler.
func (c *Container) initSecurityKeyHandler() (*securityKeyHTTP.SecurityKeyHandler, error) {
	useCase, err := c.SecurityKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get security key use case for security key handler: %w", err)
	}

	return securityKeyHTTP.NewSecurityKeyHandler(useCase, c.Logger()), nil
}
