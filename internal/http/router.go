package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jmaliksi/blaseball-reference.com/internal/http/handlers"
	"github.com/jmaliksi/blaseball-reference.com/internal/http/middleware"
	"github.com/jmaliksi/blaseball-reference.com/internal/metrics"
)

// NewRouter assembles the page routes. The admin handler is optional and
// only mounted when non-nil.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger, recorder))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Get("/players", h.PlayerIndex)
	r.Get("/players/{playerSlug}", h.PlayerBySlug)

	r.Get("/teams", h.Teams)
	r.Get("/teams/{teamSlug}", h.TeamBySlug)
	r.Get("/teams/{teamSlug}/schedule", h.TeamSchedule)

	r.Get("/seasons/{season}/schedule", h.SeasonSchedule)
	r.Get("/standings", h.Standings)
	r.Get("/leaders", h.Leaders)
	r.Get("/search", h.Search)

	if admin != nil {
		r.Post("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}

	return r
}
