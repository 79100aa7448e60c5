// Package api wires the HTTP surface: routing, auth, rate limiting, and the
// per-module handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/matchday-club/predictor/config"
	"github.com/matchday-club/predictor/pkg/jwt"
	"golang.org/x/time/rate"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Matches     *MatchHandlers
	Predictions *PredictionHandlers
	Leaderboard *LeaderboardHandlers
	Users       *UserHandlers
	Admin       *AdminHandlers
}

// NewRouter builds the chi router with the full route tree.
//
// Reads on matches and the leaderboard are public; writing predictions
// requires a token; match mutation and operations are admin only.
func NewRouter(cfg config.HTTPConfig, tokens jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	r.Use(RateLimitMiddleware(limiter))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(CORSMiddleware(cfg.CORSOrigins))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		// Public reads.
		r.Get("/matches", h.Matches.ListMatches)
		r.Get("/matches/live", h.Matches.ListLiveMatches)
		r.Get("/matches/{matchID}", h.Matches.GetMatch)
		r.With(OptionalAuth(tokens)).Get("/leaderboard", h.Leaderboard.GetLeaderboard)
		r.Get("/leaderboard/export", h.Leaderboard.ExportLeaderboard)
		r.Get("/leaderboard/chart", h.Leaderboard.LeaderboardChart)

		// Authenticated.
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Get("/users/me", h.Users.GetMe)

			r.Post("/predictions", h.Predictions.CreatePrediction)
			r.Get("/predictions", h.Predictions.ListMyPredictions)
			r.Get("/predictions/{predictionID}", h.Predictions.GetPrediction)
			r.Put("/predictions/{predictionID}", h.Predictions.UpdatePrediction)
			r.Delete("/predictions/{predictionID}", h.Predictions.DeletePrediction)

			// Admin.
			r.Group(func(r chi.Router) {
				r.Use(AdminOnly)

				r.Post("/users", h.Users.CreateUser)

				r.Post("/matches", h.Matches.CreateMatch)
				r.Put("/matches/{matchID}", h.Matches.UpdateMatch)
				r.Delete("/matches/{matchID}", h.Matches.DeleteMatch)

				r.Post("/admin/recalculate", h.Admin.Recalculate)
				r.Post("/admin/sweeps", h.Admin.EnqueueSweep)
				r.Get("/admin/sweeps", h.Admin.ListSweepJobs)
				r.Post("/admin/simulator/start", h.Admin.StartSimulator)
				r.Post("/admin/simulator/stop", h.Admin.StopSimulator)
				r.Get("/admin/simulator", h.Admin.SimulatorStatus)
			})
		})
	})

	return r
}
