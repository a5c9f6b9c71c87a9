package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scifanor/scifanor-backend/models"
)

type PlantRepo struct {
	db *gorm.DB
}

func NewPlantRepo(db *gorm.DB) *PlantRepo {
	return &PlantRepo{db}
}

// FindAll returns all plants, newest first
func (r *PlantRepo) FindAll() ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Order("created_at DESC").Find(&plants).Error
	return plants, err
}

// FindByID returns a plant by its ID, or nil when no such row exists
func (r *PlantRepo) FindByID(id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.First(&plant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// FindByIDs returns the plants whose IDs are in the given set
func (r *PlantRepo) FindByIDs(ids []uuid.UUID) ([]models.Plant, error) {
	if len(ids) == 0 {
		return []models.Plant{}, nil
	}
	var plants []models.Plant
	err := r.db.Where("id IN ?", ids).Order("created_at DESC").Find(&plants).Error
	return plants, err
}

// FindByCreator returns the plants created by the given user, newest first
func (r *PlantRepo) FindByCreator(userID uuid.UUID) ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&plants).Error
	return plants, err
}

// Add inserts a new plant into the database
func (r *PlantRepo) Add(plant *models.Plant) error {
	return r.db.Create(plant).Error
}

// Update updates an existing plant in the database
func (r *PlantRepo) Update(plant *models.Plant) error {
	return r.db.Save(plant).Error
}

// Delete removes a plant from the database by id
func (r *PlantRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Plant{}, "id = ?", id).Error
}
