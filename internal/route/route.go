// Package route defines the client paths the console can navigate to and the
// navigation effects returned by use cases.
package route

// Navigable client paths.
const (
	Home       = "/"
	Login      = "/login"
	Checkin    = "/checkin"
	Vote       = "/vote"
	Admin      = "/admin"
	Onboarding = "/onboarding"
)

// Navigation is an instruction for the client router. Replace swaps the current
// history entry instead of pushing a new one.
type Navigation struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace"`
}

// Push returns a navigation that adds a history entry.
func Push(path string) Navigation {
	return Navigation{Path: path}
}

// ReplaceWith returns a navigation that replaces the current history entry.
func ReplaceWith(path string) Navigation {
	return Navigation{Path: path, Replace: true}
}

// Known reports whether path is one of the console's navigable paths.
func Known(path string) bool {
	switch path {
	case Home, Login, Checkin, Vote, Admin, Onboarding:
		return true
	}
	return false
}
