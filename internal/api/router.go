package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/questlog/questlog/internal/energy"
	"github.com/questlog/questlog/internal/store"
	"github.com/questlog/questlog/internal/tasks"
	"github.com/questlog/questlog/internal/ws"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	taskSvc *tasks.Service,
	energySvc *energy.Service,
	bonusStore *store.BonusStore,
	db *store.DB,
	hub *ws.Hub,
	todoPath string,
	loc *time.Location,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Recovery(logger))

	// The websocket route skips the logging middleware so the response
	// writer stays hijackable for the upgrade.
	r.Get("/ws", hub.Serve)

	healthH := NewHealthHandler(db, todoPath, hub)
	todoH := NewTodoHandler(taskSvc, hub)
	statsH := NewStatsHandler(taskSvc, bonusStore, loc)
	energyH := NewEnergyHandler(energySvc)

	r.Group(func(r chi.Router) {
		r.Use(Logger(logger))

		r.Get("/health", healthH.Health)

		r.Route("/api", func(r chi.Router) {
			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoH.Get)
				r.Post("/", todoH.Update)
			})

			r.Get("/stats", statsH.Get)
			r.Post("/stats/bonus", statsH.Bonus)
			r.Get("/quick-win", statsH.QuickWin)

			r.Route("/energy", func(r chi.Router) {
				r.Get("/", energyH.GetState)
				r.Post("/consume", energyH.Consume)
				r.Post("/break", energyH.StartBreak)
				r.Post("/restore", energyH.CompleteBreak)
				r.Get("/regeneration", energyH.Regeneration)
				r.Post("/regeneration/pause", energyH.PauseRegeneration)
				r.Post("/regeneration/resume", energyH.ResumeRegeneration)
			})
		})
	})

	return r
}
