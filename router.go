package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/controllers"
	"github.com/blogem/geoattend/middleware"
)

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, adminSecretHash string, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// PUBLIC ROUTES
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "%s"}`, programName)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/attendance", ctrl.Attendance.Submit)
	r.Get("/attendance", ctrl.Attendance.List)
	r.Get("/zones", ctrl.Zone.List)
	r.Get("/zones/active", ctrl.Zone.Active)
	r.Get("/stats", ctrl.Report.Stats)

	// ADMIN ROUTES (shared secret required)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminSecret(adminSecretHash, log))

		r.Post("/zones", ctrl.Zone.Create)
		r.Post("/zones/{id}/activate", ctrl.Zone.Activate)
		r.Post("/zones/{id}/deactivate", ctrl.Zone.Deactivate)
		r.Delete("/zones/{id}", ctrl.Zone.Delete)

		r.Patch("/attendance/{id}", ctrl.Attendance.Update)
		r.Post("/attendance/{id}/verify", ctrl.Attendance.Verify)
		r.Get("/attendance/{id}/history", ctrl.Attendance.History)

		r.Get("/identities", ctrl.Identity.List)
		r.Post("/identities/{id}/deactivate", ctrl.Identity.Deactivate)
		r.Post("/summary", ctrl.Report.Summary)
	})

	return r
}
