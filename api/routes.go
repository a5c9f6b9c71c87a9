package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public catalog surface and the authenticated
// dashboard surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes: the catalog, profiles and QR codes are readable
	// without an account.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/plants", handlers.plantHandler.getCatalog())
		r.Get("/plant/{plantID}", handlers.plantHandler.getPlant())
		r.Get("/plant/{plantID}/activities", handlers.plantHandler.getActivities())
		r.Get("/plant/{plantID}/qr", handlers.plantHandler.getQRCode())
		r.Get("/plant/{plantID}/collaborators", handlers.collaboratorHandler.getCollaborators())

		r.Get("/profiles", handlers.profileHandler.getAllProfiles())
		r.Get("/profile/{userID}", handlers.profileHandler.getProfile())
	})

	// Authenticated routes: every mutation requires a verified identity.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/auth/me", handlers.authHandler.me())

		r.Get("/profiles/search", handlers.profileHandler.searchProfiles())

		r.Post("/plant", handlers.plantHandler.createPlant())
		r.Put("/plant/{plantID}", handlers.plantHandler.updatePlant())
		r.Delete("/plant/{plantID}", handlers.plantHandler.deletePlant())
		r.Post("/plant/{plantID}/image", handlers.plantHandler.uploadImage())

		r.Post("/plant/{plantID}/collaborators", handlers.collaboratorHandler.addCollaborator())
		r.Delete("/plant/{plantID}/collaborators/{userID}", handlers.collaboratorHandler.removeCollaborator())
	})
}
