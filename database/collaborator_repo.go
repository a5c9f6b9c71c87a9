package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
)

// Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type CollaboratorRepo struct {
	db *gorm.DB
}

func NewCollaboratorRepo(db *gorm.DB) *CollaboratorRepo {
	return &CollaboratorRepo{db}
}

// FindAll returns every collaborator link in the catalog
func (r *CollaboratorRepo) FindAll() ([]models.PlantCollaborator, error) {
	var links []models.PlantCollaborator
	err := r.db.Find(&links).Error
	return links, err
}

// FindByPlant returns the collaborator links for a single plant
func (r *CollaboratorRepo) FindByPlant(plantID uuid.UUID) ([]models.PlantCollaborator, error) {
	var links []models.PlantCollaborator
	err := r.db.Where("plant_id = ?", plantID).Find(&links).Error
	return links, err
}

// FindByUser returns the collaborator links a user appears in
func (r *CollaboratorRepo) FindByUser(userID uuid.UUID) ([]models.PlantCollaborator, error) {
	var links []models.PlantCollaborator
	err := r.db.Where("user_id = ?", userID).Find(&links).Error
	return links, err
}

// Add inserts a new collaborator link. A duplicate (plant_id, user_id) pair is
// reported as a conflict so callers can distinguish it from other failures.
func (r *CollaboratorRepo) Add(link *models.PlantCollaborator) error {
	if err := r.db.Create(link).Error; err != nil {
		return translateDuplicateLink(err)
	}
	return nil
}

// translateDuplicateLink maps a driver-level unique violation on the
// (plant_id, user_id) index to the conflict error callers branch on; every
// other error passes through untouched.
func translateDuplicateLink(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errs.NewAlreadyExists("collaborator")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExists("collaborator")
	}
	return err
}

// Remove deletes the link for the given (plant, user) pair
func (r *CollaboratorRepo) Remove(plantID, userID uuid.UUID) error {
	return r.db.Where("plant_id = ? AND user_id = ?", plantID, userID).
		Delete(&models.PlantCollaborator{}).Error
}
