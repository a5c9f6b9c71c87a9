package models

import (
	"time"

	"github.com/google/uuid"
)

// PlantCollaborator links a profile to a plant it helped document.
// The (plant_id, user_id) pair is unique; inserting an existing pair
// is reported as a conflict, never as a second row.
type PlantCollaborator struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PlantID uuid.UUID `json:"plant_id" db:"plant_id" gorm:"type:uuid;not null;index:idx_plant_collaborators_plant_id;uniqueIndex:idx_plant_collaborators_unique;constraint:OnDelete:CASCADE"`
	UserID  uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_plant_collaborators_unique"`
	AddedBy uuid.UUID `json:"added_by" db:"added_by" gorm:"type:uuid;not null"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`

	Plant Plant `json:"plant,omitempty" gorm:"foreignKey:PlantID;references:ID"`
}

func (PlantCollaborator) TableName() string { return "plant_collaborators" }
