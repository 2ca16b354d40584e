package httputil

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie describes one HttpOnly, SameSite=Lax cookie used by the console.
type Cookie struct {
	Name   string
	Secure bool
}

// Read returns the trimmed cookie value when present and non-empty.
func (ck Cookie) Read(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(ck.Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the cookie. A non-positive maxAge produces a browser-session
// cookie; anything positive lasts at least one second.
func (ck Cookie) Write(c *gin.Context, value string, maxAge time.Duration) {
	ck.set(c, strings.TrimSpace(value), maxAgeSeconds(maxAge))
}

// Clear expires the cookie.
func (ck Cookie) Clear(c *gin.Context) {
	ck.set(c, "", -1)
}

func (ck Cookie) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, value, maxAge, "/", "", ck.Secure, true)
}

func maxAgeSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	seconds := int(d / time.Second)
	if d%time.Second != 0 {
		seconds++
	}
	return seconds
}
