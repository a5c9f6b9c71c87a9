package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile represents a contributor account. The ID doubles as the auth identity.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	FullName     string    `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	AvatarURL    *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	Bio          string    `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	InstagramURL string    `json:"instagram_url,omitempty" db:"instagram_url" gorm:"type:text"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Profile) TableName() string { return "profiles" }

// Initial returns the uppercase first character of the full name for the
// fallback avatar badge, degrading to "?" when the name is empty.
func (p *Profile) Initial() string {
	for _, r := range p.FullName {
		return strings.ToUpper(string(r))
	}
	return "?"
}
