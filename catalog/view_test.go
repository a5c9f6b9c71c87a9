package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/scifanor/scifanor-backend/models"
)

func TestNormalizeLegacyImageFallsBackToFullPlant(t *testing.T) {
	plant := models.Plant{
		ID:            uuid.New(),
		NamaIndonesia: "Mangga",
		ImageURL:      "https://img.example/legacy.jpg",
	}

	view := Normalize(plant, nil, nil)

	assert.Equal(t, "https://img.example/legacy.jpg", view.MainImage)
	assert.Equal(t, "https://img.example/legacy.jpg", view.ImageByPart[models.PartFullPlant])
}

func TestNormalizePerPartImageWinsOverLegacy(t *testing.T) {
	plant := models.Plant{
		ID:       uuid.New(),
		ImageURL: "https://img.example/legacy.jpg",
		Images: datatypes.NewJSONType(map[string]string{
			models.PartFullPlant: "https://img.example/new.jpg",
		}),
	}

	view := Normalize(plant, nil, nil)

	assert.Equal(t, "https://img.example/new.jpg", view.MainImage)
}

func TestNormalizeEmptyImageEntriesAreDropped(t *testing.T) {
	plant := models.Plant{
		ID: uuid.New(),
		Images: datatypes.NewJSONType(map[string]string{
			models.PartLeaf: "https://img.example/daun.jpg",
			models.PartRoot: "",
		}),
	}

	view := Normalize(plant, nil, nil)

	assert.Contains(t, view.ImageByPart, models.PartLeaf)
	assert.NotContains(t, view.ImageByPart, models.PartRoot)
	assert.Empty(t, view.MainImage)
}

func TestNormalizeMapsAreNeverNil(t *testing.T) {
	view := Normalize(models.Plant{ID: uuid.New()}, nil, nil)

	assert.NotNil(t, view.ImageByPart)
	assert.NotNil(t, view.Collaborators)
	assert.Empty(t, view.Collaborators)
}

func TestNormalizeResolvesCreatorAndCollaborators(t *testing.T) {
	creatorID := uuid.New()
	collabID := uuid.New()
	plantID := uuid.New()

	plant := models.Plant{ID: plantID, CreatedBy: &creatorID}
	links := []models.PlantCollaborator{
		{PlantID: plantID, UserID: collabID},
		{PlantID: uuid.New(), UserID: uuid.New()}, // other plant, ignored
	}
	profiles := []models.Profile{
		{ID: creatorID, FullName: "Bu Sari"},
		{ID: collabID, FullName: "Pak Budi"},
	}

	view := Normalize(plant, links, profiles)

	require.NotNil(t, view.Creator)
	assert.Equal(t, "Bu Sari", view.Creator.FullName)

	require.Len(t, view.Collaborators, 1)
	require.NotNil(t, view.Collaborators[0].Profile)
	assert.Equal(t, "Pak Budi", view.Collaborators[0].Profile.FullName)
}

func TestNormalizeKeepsLinkWithMissingProfile(t *testing.T) {
	plantID := uuid.New()
	orphanID := uuid.New()

	plant := models.Plant{ID: plantID}
	links := []models.PlantCollaborator{{PlantID: plantID, UserID: orphanID}}

	view := Normalize(plant, links, nil)

	// The link survives with a nil profile instead of being dropped
	require.Len(t, view.Collaborators, 1)
	assert.Equal(t, orphanID, view.Collaborators[0].UserID)
	assert.Nil(t, view.Collaborators[0].Profile)
}

func TestNormalizeAllBuildsOneViewPerPlant(t *testing.T) {
	plants := []models.Plant{
		{ID: uuid.New(), NamaIndonesia: "Mangga"},
		{ID: uuid.New(), NamaIndonesia: "Jambu Biji"},
	}

	views := NormalizeAll(plants, nil, nil)

	require.Len(t, views, 2)
	assert.Equal(t, "Mangga", views[0].NamaIndonesia)
	assert.Equal(t, "Jambu Biji", views[1].NamaIndonesia)
}
