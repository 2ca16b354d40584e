// Package usecase serves the navigation shell for the current session.
package usecase

import (
	"context"
	"log/slog"

	navigationDomain "github.com/fraservotes/console/internal/navigation/domain"
	"github.com/fraservotes/console/internal/route"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// SessionLogout is the slice of the session provider the shell needs.
type SessionLogout interface {
	Logout(ctx context.Context, tokenHash string) error
}

// NavigationUseCase builds the shell and runs the logout action.
type NavigationUseCase interface {
	Shell(s sessionDomain.Session, currentPath string, hovered bool) navigationDomain.Shell

	// Logout revokes tokenHash when present and returns the login navigation.
	// The navigation is returned even when revocation fails.
	Logout(ctx context.Context, tokenHash string) (route.Navigation, error)

	Loading(message string) navigationDomain.LoadingScreen
}

type navigationUseCase struct {
	sessions     SessionLogout
	routeContext sessionDomain.RouteContext
	options      navigationDomain.Options
	logger       *slog.Logger
}

func (n *navigationUseCase) Shell(
	s sessionDomain.Session,
	currentPath string,
	hovered bool,
) navigationDomain.Shell {
	return navigationDomain.Build(s, n.routeContext, n.options, currentPath, hovered)
}

func (n *navigationUseCase) Logout(ctx context.Context, tokenHash string) (route.Navigation, error) {
	nav, err := navigationDomain.Logout(ctx, func(ctx context.Context) error {
		if tokenHash == "" {
			return nil
		}
		return n.sessions.Logout(ctx, tokenHash)
	})
	if err != nil {
		n.logger.Warn("logout failed, navigating to login anyway", slog.Any("error", err))
	}
	return nav, err
}

func (n *navigationUseCase) Loading(message string) navigationDomain.LoadingScreen {
	return navigationDomain.NewLoadingScreen(message)
}

// NewNavigationUseCase creates the navigation use case.
func NewNavigationUseCase(
	sessions SessionLogout,
	routeContext sessionDomain.RouteContext,
	options navigationDomain.Options,
	logger *slog.Logger,
) NavigationUseCase {
	return &navigationUseCase{
		sessions:     sessions,
		routeContext: routeContext,
		options:      options,
		logger:       logger,
	}
}
