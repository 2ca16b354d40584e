package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fraservotes/console/internal/database"
	"github.com/fraservotes/console/internal/httputil"
	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	onboardingHTTP "github.com/fraservotes/console/internal/onboarding/http"
	onboardingRepository "github.com/fraservotes/console/internal/onboarding/repository"
	onboardingService "github.com/fraservotes/console/internal/onboarding/service"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
)

// onboardingCleanupInterval is how often expired onboarding flows are evicted.
const onboardingCleanupInterval = time.Minute

// AssetPreloader returns the onboarding image preloader.
func (c *Container) AssetPreloader() (onboardingService.AssetPreloader, error) {
	var err error
	c.assetPreloaderInit.Do(func() {
		c.assetPreloader, err = c.initAssetPreloader()
		if err != nil {
			c.initErrors["assetPreloader"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetPreloader"]; exists {
		return nil, storedErr
	}
	return c.assetPreloader, nil
}

// CompletionRepository returns the onboarding completion repository based on database driver.
func (c *Container) CompletionRepository() (onboardingUseCase.CompletionRepository, error) {
	var err error
	c.completionRepositoryInit.Do(func() {
		c.completionRepository, err = c.initCompletionRepository()
		if err != nil {
			c.initErrors["completionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["completionRepository"]; exists {
		return nil, storedErr
	}
	return c.completionRepository, nil
}

// OnboardingService returns the onboarding flow store. It is kept separately from
// OnboardingUseCase so Shutdown can drain it.
func (c *Container) OnboardingService() (*onboardingUseCase.OnboardingService, error) {
	var err error
	c.onboardingServiceInit.Do(func() {
		c.onboardingService, err = c.initOnboardingService()
		if err != nil {
			c.initErrors["onboardingService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["onboardingService"]; exists {
		return nil, storedErr
	}
	return c.onboardingService, nil
}

// OnboardingUseCase returns the onboarding use case.
func (c *Container) OnboardingUseCase() (onboardingUseCase.OnboardingUseCase, error) {
	var err error
	c.onboardingUseCaseInit.Do(func() {
		c.onboardingUseCase, err = c.initOnboardingUseCase()
		if err != nil {
			c.initErrors["onboardingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["onboardingUseCase"]; exists {
		return nil, storedErr
	}
	return c.onboardingUseCase, nil
}

// OnboardingHandler returns the onboarding HTTP handler.
func (c *Container) OnboardingHandler() (*onboardingHTTP.OnboardingHandler, error) {
	var err error
	c.onboardingHandlerInit.Do(func() {
		c.onboardingHandler, err = c.initOnboardingHandler()
		if err != nil {
			c.initErrors["onboardingHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["onboardingHandler"]; exists {
		return nil, storedErr
	}
	return c.onboardingHandler, nil
}

// initAssetPreloader creates the HTTP asset preloader.
func (c *Container) initAssetPreloader() (onboardingService.AssetPreloader, error) {
	client := &http.Client{Timeout: c.config.OnboardingPreloadTimeout}

	preloader, err := onboardingService.NewHTTPAssetPreloader(client, onboardingService.PreloaderConfig{
		BaseURL:     c.config.OnboardingAssetBaseURL,
		Timeout:     c.config.OnboardingPreloadTimeout,
		Concurrency: c.config.OnboardingPreloadConcurrency,
	}, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create asset preloader: %w", err)
	}
	return preloader, nil
}

// initCompletionRepository creates the completion repository based on the database driver.
func (c *Container) initCompletionRepository() (onboardingUseCase.CompletionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for completion repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return onboardingRepository.NewPostgreSQLCompletionRepository(db), nil
	case database.DriverMySQL:
		return onboardingRepository.NewMySQLCompletionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOnboardingService creates the onboarding flow store with all its dependencies.
func (c *Container) initOnboardingService() (*onboardingUseCase.OnboardingService, error) {
	repo, err := c.CompletionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get completion repository for onboarding service: %w", err)
	}

	preloader, err := c.AssetPreloader()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset preloader for onboarding service: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for onboarding service: %w", err)
	}

	return onboardingUseCase.NewOnboardingService(onboardingUseCase.Config{
		Steps:           onboardingDomain.DefaultSteps(),
		FlowTTL:         c.config.OnboardingFlowTTL,
		CleanupInterval: onboardingCleanupInterval,
	}, repo, preloader, businessMetrics, c.Logger()), nil
}

// initOnboardingUseCase wraps the onboarding service with metrics if enabled.
func (c *Container) initOnboardingUseCase() (onboardingUseCase.OnboardingUseCase, error) {
	service, err := c.OnboardingService()
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding service for onboarding use case: %w", err)
	}

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for onboarding use case: %w", err)
		}
		return onboardingUseCase.NewOnboardingUseCaseWithMetrics(service, businessMetrics), nil
	}

	return service, nil
}

// initOnboardingHandler creates the onboarding HTTP handler.
func (c *Container) initOnboardingHandler() (*onboardingHTTP.OnboardingHandler, error) {
	useCase, err := c.OnboardingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding use case for onboarding handler: %w", err)
	}

	deviceCookie := httputil.Cookie{
		Name:   c.config.OnboardingDeviceCookieName,
		Secure: c.config.SessionCookieSecure,
	}

	return onboardingHTTP.NewOnboardingHandler(useCase, deviceCookie, c.Logger()), nil
}
