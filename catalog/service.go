package catalog

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
)

// Service fetches raw rows and assembles the in-memory view collection.
// Each call rebuilds the collection wholesale; nothing is cached between
// requests.
type Service struct {
	logger        zerolog.Logger
	plants        *database.PlantRepo
	profiles      *database.ProfileRepo
	collaborators *database.CollaboratorRepo
}

func NewService(db database.Database) *Service {
	return &Service{
		logger:        log.With().Str("component", "catalog").Logger(),
		plants:        db.PlantRepo(),
		profiles:      db.ProfileRepo(),
		collaborators: db.CollaboratorRepo(),
	}
}

// ListViews loads every plant and denormalizes it with creators and
// collaborators. The plant fetch is the only hard failure; link and profile
// lookups are augmentations, so their errors are logged and the views are
// built with whatever resolved (per-view nil creators/profiles), never
// aborting the whole page.
func (s *Service) ListViews() ([]PlantView, error) {
	plants, err := s.plants.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "plants", err)
	}

	var (
		links    []models.PlantCollaborator
		profiles []models.Profile
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if links, err = s.collaborators.FindAll(); err != nil {
			s.logger.Error().Err(err).Msg("loading collaborator links failed, rendering without them")
			links = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if profiles, err = s.profiles.FindAll(); err != nil {
			s.logger.Error().Err(err).Msg("loading profiles failed, rendering without them")
			profiles = nil
		}
		return nil
	})
	_ = g.Wait()

	return NormalizeAll(plants, links, profiles), nil
}

// GetView loads a single plant and denormalizes it. Returns NotFound when
// the id has no row. Augmentation failures degrade like ListViews.
func (s *Service) GetView(id uuid.UUID) (*PlantView, error) {
	plant, err := s.plants.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "plant", err)
	}
	if plant == nil {
		return nil, errs.NewNotFound("plant")
	}

	links, err := s.collaborators.FindByPlant(plant.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("plantID", id.String()).Msg("loading collaborator links failed, rendering without them")
		links = nil
	}

	ids := make([]uuid.UUID, 0, len(links)+1)
	if plant.CreatedBy != nil {
		ids = append(ids, *plant.CreatedBy)
	}
	for _, link := range links {
		ids = append(ids, link.UserID)
	}

	profiles, err := s.profiles.FindByIDs(ids)
	if err != nil {
		s.logger.Error().Err(err).Str("plantID", id.String()).Msg("loading profiles failed, rendering without them")
		profiles = nil
	}

	view := Normalize(*plant, links, profiles)
	return &view, nil
}
