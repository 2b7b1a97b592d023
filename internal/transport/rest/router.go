package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/readinglist-backend/internal/transport/middleware"
	"github.com/heartmarshall/readinglist-backend/internal/transport/problem"
)

// NewRouter wires the REST endpoints behind the middleware chain. The order
// is RequestID, SecurityHeaders, Logger, Recovery, then per-group RateLimit
// and BodyLimit; /health sits outside the rate-limited group so probes
// cannot exhaust a client's window.
func NewRouter(entries *EntryHandler, health *HealthHandler, limiter *middleware.RateLimiter, maxBodyBytes int64, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, problem.NotFound("resource not found", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, problem.MethodNotAllowed(r.URL.Path))
	})

	r.Get("/health", health.Health)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Limit())
		r.Use(middleware.BodyLimit(maxBodyBytes))

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", entries.List)
			r.Post("/", entries.Create)
			r.Get("/filter/by-status", entries.ListByFilter)
			r.Get("/{id}", entries.Get)
			r.Put("/{id}", entries.Update)
			r.Delete("/{id}", entries.Delete)
		})
	})

	return r
}
