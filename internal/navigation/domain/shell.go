// Package domain models the navigation shell: capability-gated links, the
// full-screen visibility rule, the user badge and the logout effect.
package domain

import (
	"context"

	"github.com/fraservotes/console/internal/route"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// Brand is the title rendered next to the logo.
const Brand = "FraserVotes"

// Visibility of the shell on the current route.
type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

// Link is one navigation entry.
type Link struct {
	Label string
	Path  string
}

// UserBadge is shown when a user is signed in. An empty AvatarURL means the
// client renders its placeholder icon.
type UserBadge struct {
	DisplayName string
	AvatarURL   string
	Role        sessionDomain.Role
}

// Shell is the full navigation model for one render.
type Shell struct {
	Home        Link
	Links       []Link
	Visibility  Visibility
	User        *UserBadge
	CurrentPath string
}

// Options configures shell rendering.
type Options struct {
	// FullScreenRoute is the route on which the shell hides unless hovered.
	FullScreenRoute string
}

// gatedLink pairs a link with the capability predicate that reveals it.
type gatedLink struct {
	link    Link
	allowed func(sessionDomain.CapabilitySet) bool
}

var gatedLinks = []gatedLink{
	{link: Link{Label: "Check-In", Path: route.Checkin}, allowed: sessionDomain.CapabilitySet.CanAccessCheckin},
	{link: Link{Label: "Vote", Path: route.Vote}, allowed: sessionDomain.CapabilitySet.CanAccessVote},
	{link: Link{Label: "Admin", Path: route.Admin}, allowed: sessionDomain.CapabilitySet.IsAdmin},
}

// Links returns exactly the links whose predicate holds for caps, in display order.
func Links(caps sessionDomain.CapabilitySet) []Link {
	links := make([]Link, 0, len(gatedLinks))
	for _, g := range gatedLinks {
		if g.allowed(caps) {
			links = append(links, g.link)
		}
	}
	return links
}

// ComputeVisibility hides the shell on the full-screen route unless it is hovered.
// Any other route is always visible.
func ComputeVisibility(currentPath, fullScreenRoute string, hovered bool) Visibility {
	if fullScreenRoute != "" && currentPath == fullScreenRoute && !hovered {
		return Hidden
	}
	return Visible
}

// Build derives the shell from a session snapshot. Capabilities are recomputed on
// every call.
func Build(
	s sessionDomain.Session,
	rc sessionDomain.RouteContext,
	opts Options,
	currentPath string,
	hovered bool,
) Shell {
	shell := Shell{
		Home:        Link{Label: Brand, Path: route.Home},
		Links:       Links(sessionDomain.Capabilities(s, rc)),
		Visibility:  ComputeVisibility(currentPath, opts.FullScreenRoute, hovered),
		CurrentPath: currentPath,
	}

	if s.User != nil {
		shell.User = &UserBadge{
			DisplayName: s.User.DisplayName,
			AvatarURL:   s.User.AvatarURL,
			Role:        s.Role,
		}
	}

	return shell
}

// Logout runs logout and then always navigates to the login page. A logout
// error is returned alongside the navigation for logging; it never blocks it.
func Logout(ctx context.Context, logout func(ctx context.Context) error) (route.Navigation, error) {
	var err error
	if logout != nil {
		err = logout(ctx)
	}
	return route.Push(route.Login), err
}
