package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity action types recorded against a plant.
const (
	ActionCreate             = "create"
	ActionUpdate             = "update"
	ActionDelete             = "delete"
	ActionImageAdd           = "image_add"
	ActionAddCollaborator    = "add_collaborator"
	ActionRemoveCollaborator = "remove_collaborator"
)

// ActivityLog is an append-only audit record for a plant. Rows are created on
// every mutating action and are never updated or deleted.
type ActivityLog struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PlantID    uuid.UUID `json:"plant_id" db:"plant_id" gorm:"type:uuid;not null;index:idx_plant_activity_logs_plant_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null"`
	ActionType string    `json:"action_type" db:"action_type" gorm:"type:text;not null"`
	Details    string    `json:"details" db:"details" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string { return "plant_activity_logs" }
