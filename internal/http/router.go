package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cratestats/cratestats/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(RateLimitMiddleware)

	r.Get("/", handlers.DashboardHandler)
	r.Get("/healthz", handlers.HealthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/categories/top", handlers.GetTopCategoriesHandler)
		r.Post("/downloads", handlers.DownloadTimeseriesHandler)
	})

	return r
}
