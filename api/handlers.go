package api

import (
	"github.com/scifanor/scifanor-backend/catalog"
	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/services"
)

type routeHandlers struct {
	authHandler         authHandler
	plantHandler        plantHandler
	profileHandler      profileHandler
	collaboratorHandler collaboratorHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, storage *services.Storage, jwtSecret, publicSiteURL string) *routeHandlers {
	catalogService := catalog.NewService(db)

	return &routeHandlers{
		authHandler:         newAuthHandler(db.ProfileRepo(), jwtSecret),
		plantHandler:        newPlantHandler(db, catalogService, storage, publicSiteURL),
		profileHandler:      newProfileHandler(db),
		collaboratorHandler: newCollaboratorHandler(db),
	}
}
