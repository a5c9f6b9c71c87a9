package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scifanor/scifanor-backend/catalog"
	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
)

type profileHandler struct {
	responder        Responder
	logger           zerolog.Logger
	profileRepo      *database.ProfileRepo
	plantRepo        *database.PlantRepo
	collaboratorRepo *database.CollaboratorRepo
}

func newProfileHandler(db database.Database) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		profileRepo:      db.ProfileRepo(),
		plantRepo:        db.PlantRepo(),
		collaboratorRepo: db.CollaboratorRepo(),
	}
}

// getAllProfiles lists every contributor, ordered by name
func (h profileHandler) getAllProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.profileRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profiles", err))
			return
		}

		h.responder.WriteJSON(w, profiles)
	}
}

// searchResultLimit caps the match list the add-collaborator picker renders.
const searchResultLimit = 10

// searchProfiles finds contributors by name for the add-collaborator picker.
// Queries shorter than two characters return an empty list, mirroring the
// picker's own threshold, so a single keystroke never hits the database.
func (h profileHandler) searchProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if len([]rune(query)) < 2 {
			h.responder.WriteJSON(w, []models.Profile{})
			return
		}

		profiles, err := h.profileRepo.SearchByName(query, searchResultLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profiles", err))
			return
		}

		h.responder.WriteJSON(w, profiles)
	}
}

// profileStats counts a contributor's plants: created, collaborated on, and
// the union of the two.
type profileStats struct {
	Total        int `json:"total"`
	Created      int `json:"created"`
	Collaborated int `json:"collaborated"`
}

// ProfilePage is the contributor page payload: the profile, the plants they
// created, the plants they collaborate on, and the counts.
type ProfilePage struct {
	Profile       *models.Profile     `json:"profile"`
	CreatedPlants []catalog.PlantView `json:"created_plants"`
	CollabPlants  []catalog.PlantView `json:"collab_plants"`
	Stats         profileStats        `json:"stats"`
}

// getProfile retrieves one contributor with their plants and stats
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		created, err := h.plantRepo.FindByCreator(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plants", err))
			return
		}

		links, err := h.collaboratorRepo.FindByUser(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "collaborators", err))
			return
		}
		collabIDs := make([]uuid.UUID, 0, len(links))
		for _, link := range links {
			collabIDs = append(collabIDs, link.PlantID)
		}
		collab, err := h.plantRepo.FindByIDs(collabIDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plants", err))
			return
		}

		// Total is the union of created and collaborated plants; a
		// contributor added as collaborator on their own plant counts once.
		seen := make(map[uuid.UUID]struct{}, len(created)+len(collab))
		for _, p := range created {
			seen[p.ID] = struct{}{}
		}
		for _, p := range collab {
			seen[p.ID] = struct{}{}
		}

		h.responder.WriteJSON(w, ProfilePage{
			Profile:       profile,
			CreatedPlants: catalog.NormalizeAll(created, nil, nil),
			CollabPlants:  catalog.NormalizeAll(collab, nil, nil),
			Stats: profileStats{
				Total:        len(seen),
				Created:      len(created),
				Collaborated: len(collab),
			},
		})
	}
}
