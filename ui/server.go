package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"

	"leadhub/internal/auth"
	"leadhub/internal/config"
	"leadhub/internal/intake"
	"leadhub/internal/statement"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Server is the gin web application: login, upload-clean-preview-download
// flow, and the statement verification report.
type Server struct {
	router    *gin.Engine
	templates *template.Template
	config    *config.Config
	auth      *auth.Service
	processor *intake.Processor
	verifier  *statement.Service
}

// NewServer creates and wires the web server.
func NewServer(cfg *config.Config, authService *auth.Service, processor *intake.Processor, verifier *statement.Service) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.Default(),
		templates: templates,
		config:    cfg,
		auth:      authService,
		processor: processor,
		verifier:  verifier,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealthz)
	s.router.GET("/login", s.handleLoginPage)
	s.router.POST("/login", s.handleLogin)
	s.router.POST("/logout", s.handleLogout)

	authed := s.router.Group("/", s.requireSession())
	authed.GET("/", s.handleIndex)
	authed.POST("/clean", s.handleClean)
	authed.GET("/clean/:id/download", s.handleDownload)
	authed.POST("/clean/:id/confirm", s.handleConfirm)
	authed.GET("/verify", s.handleVerifyPage)
	authed.POST("/verify", s.handleVerify)
}

// Start runs the HTTP server.
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting web server on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// pct renders a 0..1 ratio as a whole percentage.
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v*100)
		},
		// money renders a dollar amount.
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}
}
