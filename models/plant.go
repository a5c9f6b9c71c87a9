package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recognized image part keys for a plant record.
const (
	PartFullPlant = "full_plant"
	PartRoot      = "root"
	PartStem      = "stem"
	PartLeaf      = "leaf"
	PartFruit     = "fruit"
	PartFlower    = "flower"
)

// ImageParts lists the recognized part keys in display order.
var ImageParts = []string{PartFullPlant, PartRoot, PartStem, PartLeaf, PartFruit, PartFlower}

// Plant represents a single catalog entry
type Plant struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	NamaIndonesia string    `json:"nama_indonesia" db:"nama_indonesia" gorm:"type:text;not null"`
	NamaLatin     string    `json:"nama_latin" db:"nama_latin" gorm:"type:text"`
	Kingdom       string    `json:"kingdom" db:"kingdom" gorm:"type:text"`
	Divisi        string    `json:"divisi" db:"divisi" gorm:"type:text"`
	Class         string    `json:"class" db:"class" gorm:"type:text"`
	Ordo          string    `json:"ordo" db:"ordo" gorm:"type:text"`
	Famili        string    `json:"famili" db:"famili" gorm:"type:text"`
	Genus         string    `json:"genus" db:"genus" gorm:"type:text"`
	Spesies       string    `json:"spesies" db:"spesies" gorm:"type:text"`
	Habitat       string    `json:"habitat" db:"habitat" gorm:"type:text"`
	CiriKhas      string    `json:"ciri_khas" db:"ciri_khas" gorm:"type:text"`
	Manfaat       string    `json:"manfaat" db:"manfaat" gorm:"type:text"`

	// Legacy single-image column, kept for records created before the
	// per-part image map existed.
	ImageURL string `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`

	// Images maps part key (full_plant, root, stem, leaf, fruit, flower)
	// to a public image URL.
	Images datatypes.JSONType[map[string]string] `json:"images" db:"images" gorm:"type:jsonb"`

	// TaxonomyDescriptions maps a taxonomy level key to free text.
	TaxonomyDescriptions datatypes.JSONType[map[string]string] `json:"taxonomy_descriptions" db:"taxonomy_descriptions" gorm:"type:jsonb"`

	YoutubeURL string     `json:"youtube_url,omitempty" db:"youtube_url" gorm:"type:text"`
	CreatedBy  *uuid.UUID `json:"created_by,omitempty" db:"created_by" gorm:"type:uuid;index:idx_plants_created_by"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Plant) TableName() string { return "plants" }

// ImageMap returns the per-part image map, or nil when the record has none.
func (p *Plant) ImageMap() map[string]string {
	return p.Images.Data()
}

// TaxonomyDescriptionMap returns the per-level description map, or nil.
func (p *Plant) TaxonomyDescriptionMap() map[string]string {
	return p.TaxonomyDescriptions.Data()
}
