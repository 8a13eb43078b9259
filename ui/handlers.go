package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLoginPage(c *gin.Context) {
	s.renderTemplate(c, "login.html", gin.H{})
}

func (s *Server) handleLogin(c *gin.Context) {
	password := c.PostForm("password")
	session, err := s.auth.Login(c.Request.Context(), password)
	if err != nil {
		// Same generic message for every failure mode.
		s.renderTemplate(c, "login.html", gin.H{"Error": "incorrect password"})
		return
	}

	s.setSessionCookie(c, session.Token, int(s.auth.SessionTTL().Seconds()))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(s.auth.CookieName()); err == nil {
		s.auth.Logout(c.Request.Context(), token)
	}
	s.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"MaxUploadMB": s.config.Intake.MaxUploadBytes / (1024 * 1024),
	})
}
