package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cobia-app/cobia-api/internal/api"
	apimiddleware "github.com/cobia-app/cobia-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.SecureHeaders)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.Metrics)

	// Create API handlers using the application's stores
	eventHandler := api.NewEventHandler(app.eventStore, app.logger)
	listItemHandler := api.NewListItemHandler(app.listItemStore, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello/", api.HandleHello)
		r.Get("/list-items/", listItemHandler.GetListItems)
		r.Get("/events/", eventHandler.ListEvents)
		r.Post("/events/", eventHandler.CreateEvent)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Anything unmatched gets a bare 404 with an empty body.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return r
}
