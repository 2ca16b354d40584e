// Package domain models the onboarding flow shown to a device before first use.
package domain

// Step is one informational onboarding screen.
type Step struct {
	Title       string
	Description string
	Image       string
}

var defaultSteps = []Step{
	{
		Title:       "Thank you for volunteering for SAC Elections 2025",
		Description: "Here are a few important reminders",
		Image:       "/lovable-uploads/5435862e-b127-467a-acf3-887926a8e0d5.png",
	},
	{
		Title: "Check-In Desk",
		Description: "If you're working the check-in desk, remember to check all ID. Students can present " +
			"drivers licenses, student IDs, health cards - anything with a picture and their name.",
		Image: "/lovable-uploads/2e28b657-77e3-45d8-be18-df2303e29f26.png",
	},
	{
		Title: "Poll Station",
		Description: "Running a poll station? Please check in with Akshat, Aleena, or Cody for your secret pin. " +
			"You'll have to enter this pin every time someone comes by to vote.",
		Image: "/lovable-uploads/82fd17d5-71fa-4488-a841-1fcf61e61713.png",
	},
	{
		Title: "Having Issues?",
		Description: "If you have issues at any point, first try refreshing the page. " +
			"Contact Akshat, Cody, or Aleena if you have further issues.",
		Image: "/lovable-uploads/bb86d0d5-b24e-45ac-a9c4-a6206fb11482.png",
	},
}

// DefaultSteps returns a copy of the event's onboarding steps.
func DefaultSteps() []Step {
	steps := make([]Step, len(defaultSteps))
	copy(steps, defaultSteps)
	return steps
}

// Images returns the image path of every step, in order.
func Images(steps []Step) []string {
	images := make([]string, 0, len(steps))
	for _, s := range steps {
		images = append(images, s.Image)
	}
	return images
}
