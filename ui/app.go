package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"leadhub/internal/auth"
	"leadhub/internal/config"
	"leadhub/internal/errors"
	"leadhub/internal/intake"
	"leadhub/internal/statement"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// App is the headless JSON API: the same clean and verify operations as
// the web app, for automation. Auth is the same session token, presented
// as a bearer token instead of a cookie.
type App struct {
	router    *chi.Mux
	config    *config.Config
	auth      *auth.Service
	processor *intake.Processor
	verifier  *statement.Service
}

// NewApp creates the API application.
func NewApp(cfg *config.Config, authService *auth.Service, processor *intake.Processor, verifier *statement.Service) *App {
	a := &App{
		router:    chi.NewRouter(),
		config:    cfg,
		auth:      authService,
		processor: processor,
		verifier:  verifier,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealthz)
	a.router.Post("/api/v1/login", a.handleLogin)

	a.router.Group(func(r chi.Router) {
		r.Use(a.requireBearer)
		r.Post("/api/v1/clean", a.handleClean)
		r.Get("/api/v1/runs/{id}/download", a.handleDownload)
		r.Post("/api/v1/verify", a.handleVerify)
		r.Get("/api/v1/suggestions", a.handleSuggestions)
	})
}

// Start starts the HTTP server.
func (a *App) Start(addr string) error {
	log.Printf("[API] Starting JSON API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux for tests.
func (a *App) Router() *chi.Mux {
	return a.router
}

// requireBearer validates the Authorization header against live
// sessions.
func (a *App) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || !a.auth.Validate(r.Context(), token) {
			a.writeError(w, http.StatusUnauthorized, errors.Unauthorized("missing or invalid token"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
