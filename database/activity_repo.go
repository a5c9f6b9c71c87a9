package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scifanor/scifanor-backend/models"
)

type ActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db}
}

// Add appends a new activity entry. Entries are immutable once written;
// there is deliberately no Update or Delete on this repo.
func (r *ActivityRepo) Add(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// FindByPlant returns the activity entries for a plant, newest first
func (r *ActivityRepo) FindByPlant(plantID uuid.UUID) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.Where("plant_id = ?", plantID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
