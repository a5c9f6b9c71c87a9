package database

import (
	"gorm.io/gorm"

	"github.com/scifanor/scifanor-backend/models"
)

type Database struct {
	plantRepo        *PlantRepo
	profileRepo      *ProfileRepo
	collaboratorRepo *CollaboratorRepo
	activityRepo     *ActivityRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		plantRepo:        NewPlantRepo(db),
		profileRepo:      NewProfileRepo(db),
		collaboratorRepo: NewCollaboratorRepo(db),
		activityRepo:     NewActivityRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PlantRepo() *PlantRepo {
	return d.plantRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) CollaboratorRepo() *CollaboratorRepo {
	return d.collaboratorRepo
}

func (d Database) ActivityRepo() *ActivityRepo {
	return d.activityRepo
}

// AutoMigrate creates or updates the schema for every model the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Plant{},
		&models.PlantCollaborator{},
		&models.ActivityLog{},
	)
}
