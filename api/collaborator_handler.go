package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scifanor/scifanor-backend/catalog"
	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
)

type collaboratorHandler struct {
	responder        Responder
	logger           zerolog.Logger
	plantRepo        *database.PlantRepo
	profileRepo      *database.ProfileRepo
	collaboratorRepo *database.CollaboratorRepo
	activityRepo     *database.ActivityRepo
}

func newCollaboratorHandler(db database.Database) collaboratorHandler {
	logger := log.With().Str("handlerName", "collaboratorHandler").Logger()

	return collaboratorHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		plantRepo:        db.PlantRepo(),
		profileRepo:      db.ProfileRepo(),
		collaboratorRepo: db.CollaboratorRepo(),
		activityRepo:     db.ActivityRepo(),
	}
}

// getCollaborators lists a plant's collaborators with resolved profiles.
// Links whose profile no longer exists are kept with a nil profile.
func (h collaboratorHandler) getCollaborators() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		links, err := h.collaboratorRepo.FindByPlant(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "collaborators", err))
			return
		}

		ids := make([]uuid.UUID, 0, len(links))
		for _, link := range links {
			ids = append(ids, link.UserID)
		}

		profiles, err := h.profileRepo.FindByIDs(ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profiles", err))
			return
		}
		byID := make(map[uuid.UUID]*models.Profile, len(profiles))
		for i := range profiles {
			byID[profiles[i].ID] = &profiles[i]
		}

		views := make([]catalog.CollaboratorView, 0, len(links))
		for _, link := range links {
			views = append(views, catalog.CollaboratorView{
				UserID:  link.UserID,
				Profile: byID[link.UserID],
			})
		}

		h.responder.WriteJSON(w, views)
	}
}

type addCollaboratorRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// addCollaborator links a profile to a plant. Adding a user who is already
// a collaborator is a no-op reported as info, not an error.
func (h collaboratorHandler) addCollaborator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req addCollaboratorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("collaborator", err))
			return
		}
		if req.UserID == uuid.Nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("user_id"))
			return
		}

		plant, err := h.plantRepo.FindByID(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plant", err))
			return
		}
		if plant == nil {
			h.responder.WriteError(w, errs.NewNotFound("plant"))
			return
		}

		profile, err := h.profileRepo.FindByID(req.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		link := &models.PlantCollaborator{
			ID:      uuid.New(),
			PlantID: plantID,
			UserID:  req.UserID,
			AddedBy: id.ID,
		}
		if err := h.collaboratorRepo.Add(link); err != nil {
			if errs.IsConflict(err) {
				h.responder.WriteInfo(w, "User sudah menjadi kolaborator")
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "collaborator", err))
			return
		}

		h.logActivity(plantID, id.ID, models.ActionAddCollaborator, "Menambahkan kolaborator baru")

		h.responder.WriteJSON(w, link)
	}
}

// removeCollaborator unlinks a profile from a plant
func (h collaboratorHandler) removeCollaborator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		if err := h.collaboratorRepo.Remove(plantID, userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "collaborator", err))
			return
		}

		h.logActivity(plantID, id.ID, models.ActionRemoveCollaborator, "Menghapus kolaborator")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "collaborator removed",
		})
	}
}

func (h collaboratorHandler) logActivity(plantID, userID uuid.UUID, action, details string) {
	entry := &models.ActivityLog{
		ID:         uuid.New(),
		PlantID:    plantID,
		UserID:     userID,
		ActionType: action,
		Details:    details,
	}
	if err := h.activityRepo.Add(entry); err != nil {
		h.logger.Error().Err(err).Str("action", action).Msg("Failed to record activity")
	}
}
