package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationConstructors(t *testing.T) {
	assert.Equal(t, Navigation{Path: "/login", Replace: false}, Push(Login))
	assert.Equal(t, Navigation{Path: "/", Replace: true}, ReplaceWith(Home))
}

func TestKnown(t *testing.T) {
	for _, p := range []string{"/", "/login", "/checkin", "/vote", "/admin", "/onboarding"} {
		assert.True(t, Known(p), p)
	}
	assert.False(t, Known("/settings"))
	assert.False(t, Known(""))
}
