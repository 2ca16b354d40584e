// Package dto provides data transfer objects for the navigation endpoints.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	navigationDomain "github.com/fraservotes/console/internal/navigation/domain"
	"github.com/fraservotes/console/internal/route"
)

// ShellQuery is the query string of GET /v1/navigation.
type ShellQuery struct {
	Path    string `form:"path"`
	Hovered bool   `form:"hovered"`
}

// Validate checks if the shell query is valid.
func (q *ShellQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Path,
			validation.Length(0, 2048),
			validation.By(func(value interface{}) error {
				p, _ := value.(string)
				if p != "" && !strings.HasPrefix(p, "/") {
					return validation.NewError("validation_path_absolute", "must start with /")
				}
				return nil
			}),
		),
	)
}

// CurrentPath returns the requested path, defaulting to home.
func (q *ShellQuery) CurrentPath() string {
	if q.Path == "" {
		return route.Home
	}
	return q.Path
}

// LinkResponse is one navigation entry.
type LinkResponse struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// UserBadgeResponse is the signed-in user badge.
type UserBadgeResponse struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Role        string `json:"role"`
	RoleLabel   string `json:"role_label"`
}

// ShellResponse is the navigation shell for one render.
type ShellResponse struct {
	Home        LinkResponse       `json:"home"`
	Links       []LinkResponse     `json:"links"`
	Visibility  string             `json:"visibility"`
	User        *UserBadgeResponse `json:"user"`
	CurrentPath string             `json:"current_path"`
}

// LogoutResponse carries the navigation effect of the logout action.
type LogoutResponse struct {
	Navigation route.Navigation `json:"navigation"`
}

// LoadingResponse is the loading screen model.
type LoadingResponse struct {
	Message  string `json:"message"`
	Advisory string `json:"advisory"`
}

// MapShellToResponse converts a shell into its response form.
func MapShellToResponse(shell navigationDomain.Shell) ShellResponse {
	links := make([]LinkResponse, 0, len(shell.Links))
	for _, l := range shell.Links {
		links = append(links, LinkResponse{Label: l.Label, Path: l.Path})
	}

	response := ShellResponse{
		Home:        LinkResponse{Label: shell.Home.Label, Path: shell.Home.Path},
		Links:       links,
		Visibility:  string(shell.Visibility),
		CurrentPath: shell.CurrentPath,
	}
	if shell.User != nil {
		response.User = &UserBadgeResponse{
			DisplayName: shell.User.DisplayName,
			AvatarURL:   shell.User.AvatarURL,
			Role:        string(shell.User.Role),
			RoleLabel:   shell.User.Role.Label(),
		}
	}
	return response
}

// MapLoadingToResponse converts a loading screen into its response form.
func MapLoadingToResponse(screen navigationDomain.LoadingScreen) LoadingResponse {
	return LoadingResponse{Message: screen.Message, Advisory: screen.Advisory}
}
