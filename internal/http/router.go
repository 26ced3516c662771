// Package http exposes the service's REST surface.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"mlb-stats-service/internal/http/middleware"
	"mlb-stats-service/internal/metrics"
)

// NewRouter registers the service routes with request id, logging and
// CORS middleware applied.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", StaleHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/schedule", handler.Schedule)
	r.Get("/games/{gamePk}", handler.GameByID)
	r.Get("/postseason", handler.Postseason)
	r.Get("/standings/wildcard", handler.WildCard)
	r.Get("/standings/divisions", handler.Divisions)
	r.Get("/teams", handler.Teams)
	r.Get("/teams/{teamID}", handler.TeamByID)
	r.Get("/teams/{teamID}/affiliates", handler.Affiliates)
	r.Get("/teams/{teamID}/roster", handler.Roster)

	return r
}
