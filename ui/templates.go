package ui

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a template
// error produces a clean 500 instead of a half-written page.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[Server] Template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("[Server] Error writing template response: %v", err)
	}
}
