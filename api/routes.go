package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupAuthRoutes mounts the unauthenticated session endpoints behind the rate limiter
func setupAuthRoutes(r chi.Router, handlers *routeHandlers, limiter *rateLimiter) {
	r.Group(func(r chi.Router) {
		r.Use(limiter.handler)

		r.Post("/api/auth/signup", handlers.authHandler.signup())
		r.Post("/api/auth/login", handlers.authHandler.login())
		r.Post("/api/auth/logout", handlers.authHandler.logout())
	})
}

// setupFrontendRoutes sets up all routes with authentication
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/api/user", handlers.userHandler.getUser())

		// Applications
		r.Get("/api/applications", handlers.applicationHandler.getAllApplications())
		r.Post("/api/applications", handlers.applicationHandler.createApplication())
		r.Get("/api/applications/board", handlers.applicationHandler.getBoard())
		r.Get("/api/applications/{id}", handlers.applicationHandler.getApplication())
		r.Put("/api/applications/{id}", handlers.applicationHandler.updateApplication())
		r.Patch("/api/applications/{id}/status", handlers.applicationHandler.updateApplicationStatus())
		r.Delete("/api/applications/{id}", handlers.applicationHandler.deleteApplication())

		// Notes
		r.Get("/api/application-notes/{appId}", handlers.noteHandler.getNotes())
		r.Post("/api/application-notes/{appId}", handlers.noteHandler.createNote())
		r.Delete("/api/application-notes/{appId}/{noteId}", handlers.noteHandler.deleteNote())

		// Tags
		r.Get("/api/tags", handlers.tagHandler.getAllTags())
		r.Post("/api/tags", handlers.tagHandler.createTag())
		r.Get("/api/application-tags/{appId}", handlers.applicationTagHandler.getApplicationTags())
		r.Post("/api/application-tags/{appId}", handlers.applicationTagHandler.addApplicationTag())
		r.Delete("/api/application-tags/{appId}/{tagId}", handlers.applicationTagHandler.removeApplicationTag())

		r.Put("/api/application-settings", handlers.settingsHandler.updateSettings())

		// Reminders
		r.Get("/api/reminders", handlers.reminderHandler.getReminders())
		r.Post("/api/reminders", handlers.reminderHandler.setReminder())
		r.Put("/api/reminders/{id}/sent", handlers.reminderHandler.markReminderSent())

		r.Get("/api/statistics", handlers.statisticsHandler.getStatistics())
		r.Get("/api/export", handlers.exportHandler.exportCSV())
	})
}

func setupOperationalRoutes(r chi.Router, health http.HandlerFunc, metricsHandler http.Handler) {
	r.Get("/healthz", health)
	r.Method(http.MethodGet, "/metrics", metricsHandler)
}
