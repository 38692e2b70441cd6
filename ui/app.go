// Package ui is a small preview service over the card system: POST a card
// snapshot and get it rendered in any supported format, or fetch a blank
// template snapshot for a graph kind.
package ui

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// App represents the preview application
type App struct {
	router *chi.Mux
}

// Config holds preview application configuration
type Config struct {
	Port string
}

// NewApp creates a new preview application
func NewApp() *App {
	app := &App{router: chi.NewRouter()}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures HTTP routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)
	a.router.Post("/cards/render/{format}", a.handleRender)
	a.router.Get("/templates/{kind}", a.handleTemplate)
}

// Router returns the HTTP handler for tests and embedding.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the preview server on the configured port.
func (a *App) Start(cfg Config) error {
	addr := ":" + cfg.Port
	log.Printf("[Server] Preview server listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
