package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scifanor/scifanor-backend/models"
)

func TestBuildAnatomyMapFollowsDisplayOrder(t *testing.T) {
	images := map[string]string{
		models.PartLeaf:      "https://img.example/daun.jpg",
		models.PartFullPlant: "https://img.example/pohon.jpg",
		models.PartRoot:      "https://img.example/akar.jpg",
	}

	parts := BuildAnatomyMap(images)

	require.Len(t, parts, 3)
	assert.Equal(t, models.PartFullPlant, parts[0].Part)
	assert.Equal(t, models.PartRoot, parts[1].Part)
	assert.Equal(t, models.PartLeaf, parts[2].Part)
}

func TestBuildAnatomyMapOmitsMissingParts(t *testing.T) {
	parts := BuildAnatomyMap(map[string]string{
		models.PartStem: "https://img.example/batang.jpg",
		models.PartRoot: "",
	})

	require.Len(t, parts, 1)
	assert.Equal(t, "Batang", parts[0].Label)
	assert.Equal(t, "https://img.example/batang.jpg", parts[0].URL)
}

func TestBuildAnatomyMapEmptyInputMeansNoImagesState(t *testing.T) {
	parts := BuildAnatomyMap(map[string]string{})

	assert.NotNil(t, parts)
	assert.Empty(t, parts)
}

func TestPartLabelFallsBackToRawKey(t *testing.T) {
	assert.Equal(t, "Akar", PartLabel(models.PartRoot))
	assert.Equal(t, "bark", PartLabel("bark"))
}

func TestIsImagePart(t *testing.T) {
	for _, part := range models.ImageParts {
		assert.True(t, IsImagePart(part), part)
	}
	assert.False(t, IsImagePart("bark"))
	assert.False(t, IsImagePart(""))
}
