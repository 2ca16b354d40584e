package app

import (
	"fmt"

	navigationDomain "github.com/fraservotes/console/internal/navigation/domain"
	navigationHTTP "github.com/fraservotes/console/internal/navigation/http"
	navigationUseCase "github.com/fraservotes/console/internal/navigation/usecase"
)

// NavigationUseCase returns the navigation shell use case.
func (c *Container) NavigationUseCase() (navigationUseCase.NavigationUseCase, error) {
	var err error
	c.navigationUseCaseInit.Do(func() {
		c.navigationUseCase, err = c.initNavigationUseCase()
		if err != nil {
			c.initErrors["navigationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["navigationUseCase"]; exists {
		return nil, storedErr
	}
	return c.navigationUseCase, nil
}

// NavigationHandler returns the navigation HTTP handler.
func (c *Container) NavigationHandler() (*navigationHTTP.NavigationHandler, error) {
	var err error
	c.navigationHandlerInit.Do(func() {
		c.navigationHandler, err = c.initNavigationHandler()
		if err != nil {
			c.initErrors["navigationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["navigationHandler"]; exists {
		return nil, storedErr
	}
	return c.navigationHandler, nil
}

// initNavigationUseCase creates the navigation use case. Logout is delegated to the session use case.
func (c *Container) initNavigationUseCase() (navigationUseCase.NavigationUseCase, error) {
	sessions, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for navigation use case: %w", err)
	}

	return navigationUseCase.NewNavigationUseCase(
		sessions,
		c.RouteContext(),
		navigationDomain.Options{FullScreenRoute: c.config.FullScreenRoute},
		c.Logger(),
	), nil
}

// initNavigationHandler creates the navigation HTTP handler.
func (c *Container) initNavigationHandler() (*navigationHTTP.NavigationHandler, error) {
	useCase, err := c.NavigationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation use case for navigation handler: %w", err)
	}

	return navigationHTTP.NewNavigationHandler(useCase, c.SessionCookie(), c.Logger()), nil
}
