// Package catalog holds the view-model core of the plant catalog: assembling
// denormalized, render-ready plant views from raw rows, filtering and sorting
// them in memory, summarizing record changes for the activity feed, and
// mapping anatomy images to their interactive parts. Everything here is pure;
// persistence lives in the database package and delivery in api.
package catalog

import (
	"github.com/google/uuid"

	"github.com/scifanor/scifanor-backend/models"
)

// CollaboratorView pairs a collaborator link with its resolved profile.
// Profile is nil when the profile lookup found no match; renderers skip
// such entries instead of failing.
type CollaboratorView struct {
	UserID  uuid.UUID       `json:"user_id"`
	Profile *models.Profile `json:"profile"`
}

// PlantView is the denormalized, render-ready representation of a plant.
// Images is never nil (possibly empty) and Collaborators is never nil
// (possibly empty); MainImage carries the legacy-fallback resolution so
// consumers read a single canonical field.
type PlantView struct {
	models.Plant

	MainImage     string             `json:"main_image,omitempty"`
	ImageByPart   map[string]string  `json:"image_by_part"`
	Creator       *models.Profile    `json:"creator,omitempty"`
	Collaborators []CollaboratorView `json:"collaborators"`
}

// Normalize converts one raw plant row plus its collaborator links and the
// profiles fetched for them into a PlantView. Links belonging to other plants
// are ignored, so callers may pass a whole page worth of links. Unmatched
// profile ids yield a nil Profile rather than dropping the link.
func Normalize(plant models.Plant, links []models.PlantCollaborator, profiles []models.Profile) PlantView {
	byID := make(map[uuid.UUID]*models.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	return normalizeWith(plant, links, byID)
}

// NormalizeAll builds the full in-memory collection for a page load. The
// result replaces any previous collection wholesale; views are never patched
// in place.
func NormalizeAll(plants []models.Plant, links []models.PlantCollaborator, profiles []models.Profile) []PlantView {
	byID := make(map[uuid.UUID]*models.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}

	views := make([]PlantView, 0, len(plants))
	for _, plant := range plants {
		views = append(views, normalizeWith(plant, links, byID))
	}
	return views
}

func normalizeWith(plant models.Plant, links []models.PlantCollaborator, profiles map[uuid.UUID]*models.Profile) PlantView {
	images := make(map[string]string)
	for part, url := range plant.ImageMap() {
		if url != "" {
			images[part] = url
		}
	}

	// Fallback for records predating the per-part image map: the legacy
	// single image becomes the full-plant entry.
	if images[models.PartFullPlant] == "" && plant.ImageURL != "" {
		images[models.PartFullPlant] = plant.ImageURL
	}

	var creator *models.Profile
	if plant.CreatedBy != nil {
		creator = profiles[*plant.CreatedBy]
	}

	collaborators := make([]CollaboratorView, 0)
	for _, link := range links {
		if link.PlantID != plant.ID {
			continue
		}
		collaborators = append(collaborators, CollaboratorView{
			UserID:  link.UserID,
			Profile: profiles[link.UserID],
		})
	}

	return PlantView{
		Plant:         plant,
		MainImage:     images[models.PartFullPlant],
		ImageByPart:   images,
		Creator:       creator,
		Collaborators: collaborators,
	}
}
