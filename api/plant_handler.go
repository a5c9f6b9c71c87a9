package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/scifanor/scifanor-backend/catalog"
	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
	"github.com/scifanor/scifanor-backend/services"
)

// maxImageSize is the upload cap, checked before any storage call.
const maxImageSize = 1 * 1024 * 1024 // 1MB

type plantHandler struct {
	responder     Responder
	logger        zerolog.Logger
	plantRepo     *database.PlantRepo
	activityRepo  *database.ActivityRepo
	profileRepo   *database.ProfileRepo
	catalog       *catalog.Service
	storage       *services.Storage
	publicSiteURL string
}

func newPlantHandler(db database.Database, catalogService *catalog.Service, storage *services.Storage, publicSiteURL string) plantHandler {
	logger := log.With().Str("handlerName", "plantHandler").Logger()

	return plantHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		plantRepo:     db.PlantRepo(),
		activityRepo:  db.ActivityRepo(),
		profileRepo:   db.ProfileRepo(),
		catalog:       catalogService,
		storage:       storage,
		publicSiteURL: publicSiteURL,
	}
}

// CatalogResponse is the catalog page payload: the visible subset with its
// counts plus the aggregates computed over the full collection.
type CatalogResponse struct {
	catalog.Result
	Aggregates catalog.Aggregates `json:"aggregates"`
}

// getCatalog retrieves the filtered, sorted catalog
// @Summary Get catalog
// @Description Retrieves the plant catalog filtered by search text and family, sorted by the requested key, with aggregate stats
// @Tags Plants
// @Produce json
// @Param q query string false "Search text (matches Indonesian name, Latin name or family)"
// @Param family query string false "Exact family filter"
// @Param sort query string false "Sort key: name-asc, name-desc, date-new, date-old"
// @Success 200 {object} CatalogResponse "Visible plants with counts and aggregates"
// @Router /plants [get]
func (h plantHandler) getCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.catalog.ListViews()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		query := catalog.Query{
			SearchText:     r.URL.Query().Get("q"),
			CategoryFilter: r.URL.Query().Get("family"),
			Sort:           catalog.ParseSortKey(r.URL.Query().Get("sort")),
		}

		response := CatalogResponse{
			Result:     catalog.ApplyFilters(views, query),
			Aggregates: catalog.ComputeAggregates(views),
		}

		h.responder.WriteJSON(w, response)
	}
}

// PlantDetail augments a normalized view with the anatomy parts and the
// embeddable video URL the detail page renders.
type PlantDetail struct {
	catalog.PlantView
	Anatomy  []catalog.AnatomyPart `json:"anatomy"`
	EmbedURL string                `json:"embed_url,omitempty"`
}

// getPlant retrieves a single plant with creator, collaborators and anatomy
// @Summary Get plant
// @Description Retrieves the denormalized detail view of a plant by ID
// @Tags Plants
// @Produce json
// @Param plantID path string true "Plant ID" format(uuid)
// @Success 200 {object} PlantDetail "Plant detail view"
// @Failure 400 {object} errs.ApiErr "Bad Request - Invalid plantID"
// @Failure 404 {object} errs.ApiErr "Not Found - Plant not found"
// @Router /plant/{plantID} [get]
func (h plantHandler) getPlant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		view, err := h.catalog.GetView(plantID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PlantDetail{
			PlantView: *view,
			Anatomy:   catalog.BuildAnatomyMap(view.ImageByPart),
			EmbedURL:  catalog.YouTubeEmbedURL(view.YoutubeURL),
		})
	}
}

// createPlant creates a new plant record
// @Summary Create plant
// @Description Creates a new plant and records a create activity
// @Tags Plants
// @Accept json
// @Produce json
// @Success 201 {object} models.Plant "Created plant"
// @Failure 400 {object} errs.ApiErr "Bad Request - Invalid plant data"
// @Router /plant [post]
func (h plantHandler) createPlant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		plant, apiErr := h.decodePlant(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		plant.ID = uuid.New()
		plant.CreatedBy = &id.ID

		if err := h.plantRepo.Add(plant); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "plant", err))
			return
		}

		h.logActivity(plant.ID, id.ID, models.ActionCreate, "Menambahkan data tumbuhan baru")

		h.responder.WriteJSON(w, plant)
	}
}

// updatePlant updates an existing plant record
// @Summary Update plant
// @Description Updates a plant and records an update activity summarizing the changed fields
// @Tags Plants
// @Accept json
// @Produce json
// @Param plantID path string true "Plant ID" format(uuid)
// @Success 200 {object} models.Plant "Updated plant"
// @Failure 404 {object} errs.ApiErr "Not Found - Plant not found"
// @Router /plant/{plantID} [put]
func (h plantHandler) updatePlant() http.HandlerFunc {
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

		existing, err := h.plantRepo.FindByID(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plant", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("plant"))
			return
		}

		plant, apiErr := h.decodePlant(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// Identity and provenance are not client-writable
		plant.ID = plantID
		plant.CreatedBy = existing.CreatedBy
		plant.CreatedAt = existing.CreatedAt

		// Summarize before the write so the audit line reflects the
		// transition actually applied
		summary := catalog.DiffToSummary(*existing, *plant)

		if err := h.plantRepo.Update(plant); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "plant", err))
			return
		}

		h.logActivity(plantID, id.ID, models.ActionUpdate, summary)

		h.responder.WriteJSON(w, plant)
	}
}

// deletePlant deletes a plant by ID
// @Summary Delete plant
// @Description Deletes a plant; only the creator or an admin may delete
// @Tags Plants
// @Produce json
// @Param plantID path string true "Plant ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} errs.ApiErr "Forbidden - not creator or admin"
// @Router /plant/{plantID} [delete]
func (h plantHandler) deletePlant() http.HandlerFunc {
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

		existing, err := h.plantRepo.FindByID(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plant", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("plant"))
			return
		}

		isCreator := existing.CreatedBy != nil && *existing.CreatedBy == id.ID
		if !isCreator && !id.IsAdmin {
			h.responder.WriteError(w, errs.NewForbiddenError("only the creator or an admin can delete a plant"))
			return
		}

		if err := h.plantRepo.Delete(plantID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "plant", err))
			return
		}

		h.logActivity(plantID, id.ID, models.ActionDelete, "Menghapus data tumbuhan")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "plant deleted successfully",
		})
	}
}

// uploadImage stores a part photo and writes its URL into the image map
// @Summary Upload plant image
// @Description Uploads an image for a named plant part (max 1MB, checked before upload)
// @Tags Plants
// @Accept mpfd
// @Produce json
// @Param plantID path string true "Plant ID" format(uuid)
// @Param part formData string false "Part key, defaults to full_plant"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Plant "Plant with updated image map"
// @Failure 413 {object} errs.ApiErr "Image too large"
// @Router /plant/{plantID}/image [post]
func (h plantHandler) uploadImage() http.HandlerFunc {
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

		existing, err := h.plantRepo.FindByID(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plant", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("plant"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+4096)
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			h.responder.WriteError(w, errs.NewFileTooLargeError(maxImageSize))
			return
		}

		part := r.FormValue("part")
		if part == "" {
			part = models.PartFullPlant
		}
		if !catalog.IsImagePart(part) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("part", "unknown plant part"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		// Size check happens here, before any storage call, so an
		// oversized file is rejected with no side effects.
		if header.Size > maxImageSize {
			h.responder.WriteError(w, errs.NewFileTooLargeError(maxImageSize))
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")

		url, err := h.storage.Upload(r.Context(), services.PlantImageBucket, ext, file, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("plantID", plantID.String()).Msg("Image upload failed")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("image upload failed", err))
			return
		}

		images := existing.ImageMap()
		if images == nil {
			images = map[string]string{}
		}
		images[part] = url
		existing.Images = datatypes.NewJSONType(images)

		// A failed save here leaves the uploaded object orphaned in the
		// bucket; accepted limitation of the non-transactional flow.
		if err := h.plantRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "plant", err))
			return
		}

		h.logActivity(plantID, id.ID, models.ActionImageAdd, "Menambahkan/Mengupdate foto "+catalog.PartLabel(part))

		h.responder.WriteJSON(w, existing)
	}
}

// ActivityWithActor pairs an activity entry with the acting user's profile.
type ActivityWithActor struct {
	models.ActivityLog
	Actor *models.Profile `json:"actor"`
}

// getActivities retrieves a plant's audit feed, newest first
func (h plantHandler) getActivities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		entries, err := h.activityRepo.FindByPlant(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "activities", err))
			return
		}

		ids := make([]uuid.UUID, 0, len(entries))
		for _, entry := range entries {
			ids = append(ids, entry.UserID)
		}

		profiles, err := h.profileRepo.FindByIDs(ids)
		if err != nil {
			// The feed still renders without actor profiles
			h.logger.Error().Err(err).Msg("Failed to load actor profiles for activity feed")
			profiles = nil
		}
		byID := make(map[uuid.UUID]*models.Profile, len(profiles))
		for i := range profiles {
			byID[profiles[i].ID] = &profiles[i]
		}

		feed := make([]ActivityWithActor, 0, len(entries))
		for _, entry := range entries {
			feed = append(feed, ActivityWithActor{
				ActivityLog: entry,
				Actor:       byID[entry.UserID],
			})
		}

		h.responder.WriteJSON(w, feed)
	}
}

// getQRCode renders a PNG QR code for a plant's public detail page
func (h plantHandler) getQRCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, apiErr := parsePlantID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.plantRepo.FindByID(plantID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "plant", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("plant"))
			return
		}

		size, _ := strconv.Atoi(r.URL.Query().Get("size"))
		png, err := services.PlantQRCode(h.publicSiteURL, plantID.String(), size)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("qr generation failed", err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}

// decodePlant reads and validates a plant payload from the request body
func (h plantHandler) decodePlant(r *http.Request) (*models.Plant, *errs.ApiErr) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		return nil, errs.NewBadRequestError("failed to read request body")
	}

	var plant models.Plant
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&plant); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode plant request body")
		return nil, errs.NewMalformedPayloadError("plant", err)
	}

	if strings.TrimSpace(plant.NamaIndonesia) == "" {
		return nil, errs.NewMissingRequiredFieldError("nama_indonesia")
	}
	if plant.YoutubeURL != "" && !catalog.IsValidYouTubeURL(plant.YoutubeURL) {
		return nil, errs.NewInvalidVideoURLError(plant.YoutubeURL)
	}

	return &plant, nil
}

// logActivity appends an audit entry; a logging failure never blocks the
// mutation that triggered it.
func (h plantHandler) logActivity(plantID, userID uuid.UUID, action, details string) {
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

// parsePlantID extracts and validates the plantID URL parameter
func parsePlantID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	plantIDStr := chi.URLParam(r, "plantID")
	if plantIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing plantID")
	}
	plantID, err := uuid.Parse(plantIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid plantID")
	}
	return plantID, nil
}
