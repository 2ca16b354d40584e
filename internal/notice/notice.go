// Package notice models transient user-visible notifications returned alongside
// use case results. The client renders them as toasts.
package notice

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is one transient message.
type Notice struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success creates a success notice.
func Success(title, description string) Notice {
	return Notice{Kind: KindSuccess, Title: title, Description: description}
}

// Info creates an informational notice.
func Info(title, description string) Notice {
	return Notice{Kind: KindInfo, Title: title, Description: description}
}

// Warning creates a warning notice.
func Warning(title, description string) Notice {
	return Notice{Kind: KindWarning, Title: title, Description: description}
}

// Error creates an error notice.
func Error(title, description string) Notice {
	return Notice{Kind: KindError, Title: title, Description: description}
}

// IsError reports whether n is destructive.
func (n Notice) IsError() bool {
	return n.Kind == KindError
}
