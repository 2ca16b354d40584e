package domain

// DefaultLoadingMessage is shown when no message is given.
const DefaultLoadingMessage = "Loading..."

// NetworkAdvisory warns volunteers about the school network that blocks the console.
const NetworkAdvisory = "This webpage does not work on the PDSB Media Network. " +
	"Please switch to PDSB WiFi or use Mobile Data where possible."

// LoadingScreen is the placeholder rendered while the console is waiting on data.
type LoadingScreen struct {
	Message  string
	Advisory string
}

// NewLoadingScreen builds a loading screen. A blank message falls back to the default.
func NewLoadingScreen(message string) LoadingScreen {
	if message == "" {
		message = DefaultLoadingMessage
	}
	return LoadingScreen{Message: message, Advisory: NetworkAdvisory}
}
