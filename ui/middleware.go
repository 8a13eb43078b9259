package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireSession gates every page behind a live session cookie. Browsers
// without one are sent to the login page.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.auth.CookieName())
		if err != nil || !s.auth.Validate(c.Request.Context(), token) {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// setSessionCookie installs the session token as an HttpOnly cookie.
func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.auth.CookieName(), token, maxAge, "/", "", false, true)
}
