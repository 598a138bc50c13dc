package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vangoframework/uikit/internal/middleware"
)

// Router wires the preview routes and global middleware.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Get("/", h.Home)

	r.Route("/api", func(r chi.Router) {
		r.Get("/button-classes", h.ButtonClasses)
		r.Get("/cn", h.CN)
	})

	return r
}
