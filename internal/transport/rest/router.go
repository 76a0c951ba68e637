package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/auth"
	"github.com/adiwarna/maintenance-management/internal/calendar"
	"github.com/adiwarna/maintenance-management/internal/equipment"
	"github.com/adiwarna/maintenance-management/internal/profile"
	"github.com/adiwarna/maintenance-management/internal/report"
	"github.com/adiwarna/maintenance-management/internal/request"
	"github.com/adiwarna/maintenance-management/internal/team"
	"github.com/adiwarna/maintenance-management/internal/transport/middleware"
	"github.com/adiwarna/maintenance-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth      *auth.Handler
	Profile   *profile.Handler
	Team      *team.Handler
	Equipment *equipment.Handler
	Request   *request.Handler
	Report    *report.Handler
	Calendar  *calendar.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", handlers.Auth.Login)
			sr.Post("/refresh", handlers.Auth.RefreshToken)
			sr.Post("/logout", handlers.Auth.Logout)
		})

		// Everything below requires an authenticated profile.
		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)

			pr.Get("/profiles/me", handlers.Profile.GetCurrentProfile)
			pr.Get("/profiles/technicians", handlers.Profile.ListTechnicians)
			pr.With(middleware.RequireManager(logger)).Get("/profiles", handlers.Profile.ListProfiles)

			pr.Route("/teams", func(tr chi.Router) {
				tr.Get("/", handlers.Team.ListTeams)
				tr.Get("/{id}", handlers.Team.GetTeam)

				tr.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireManager(logger))
					mr.Post("/", handlers.Team.CreateTeam)
					mr.Patch("/{id}", handlers.Team.UpdateTeam)
					mr.Delete("/{id}", handlers.Team.DeleteTeam)
					mr.Post("/{id}/members", handlers.Team.AddMember)
					mr.Delete("/{id}/members/{userID}", handlers.Team.RemoveMember)
				})
			})

			pr.Route("/equipment", func(er chi.Router) {
				er.Get("/", handlers.Equipment.ListEquipment)
				er.Get("/{id}", handlers.Equipment.GetEquipment)

				er.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireManager(logger))
					mr.Post("/", handlers.Equipment.CreateEquipment)
					mr.Patch("/{id}", handlers.Equipment.UpdateEquipment)
					mr.Delete("/{id}", handlers.Equipment.DeleteEquipment)
				})
			})

			pr.Route("/equipment-categories", func(cr chi.Router) {
				cr.Get("/", handlers.Equipment.ListCategories)

				cr.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireManager(logger))
					mr.Post("/", handlers.Equipment.CreateCategory)
				})
			})

			pr.Route("/requests", func(rr chi.Router) {
				rr.Post("/", handlers.Request.CreateRequest)
				rr.Get("/", handlers.Request.ListRequests)
				rr.Get("/{id}", handlers.Request.GetRequest)

				// Stage transitions stay open to the assigned technician;
				// the service enforces the actor check.
				rr.Patch("/{id}/stage", handlers.Request.TransitionStage)

				rr.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireManager(logger))
					mr.Patch("/{id}/assign", handlers.Request.AssignRequest)
				})
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/summary", handlers.Report.GetSummary)
				rr.Get("/stats", handlers.Report.GetStats)
			})

			pr.Get("/calendar", handlers.Calendar.GetMonth)
		})
	})
}
