package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scifanor/scifanor-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindAll returns every profile ordered by full name for the contributor grid
func (r *ProfileRepo) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("full_name ASC").Find(&profiles).Error
	return profiles, err
}

// FindByID returns a profile by its ID, or nil when no such row exists
func (r *ProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByIDs returns the profiles whose IDs are in the given set
func (r *ProfileRepo) FindByIDs(ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return []models.Profile{}, nil
	}
	var profiles []models.Profile
	err := r.db.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

// FindByEmail returns a profile by its login email, or nil when no such row exists
func (r *ProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchByName returns up to limit profiles whose full name contains the query,
// case-insensitively
func (r *ProfileRepo) SearchByName(query string, limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("full_name ILIKE ?", "%"+query+"%").Limit(limit).Find(&profiles).Error
	return profiles, err
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update updates an existing profile in the database
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
