package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/scifanor/scifanor-backend/models"
)

func basePlant() models.Plant {
	return models.Plant{
		NamaIndonesia: "Mangga",
		NamaLatin:     "Mangifera indica",
		Famili:        "Anacardiaceae",
		Genus:         "Mangifera",
		Spesies:       "M. indica",
		Habitat:       "Tropis",
	}
}

func TestDiffToSummaryNoChanges(t *testing.T) {
	plant := basePlant()
	assert.Equal(t, "Melakukan update data", DiffToSummary(plant, plant))
}

func TestDiffToSummarySingleFieldChange(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.Habitat = "Dataran rendah"

	assert.Equal(t, "Mengubah Habitat", DiffToSummary(old, updated))
}

func TestDiffToSummaryTwoChangesAreJoined(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.NamaIndonesia = "Mangga Arumanis"
	updated.Habitat = "Dataran rendah"

	assert.Equal(t, "Mengubah Nama Indonesia, Mengubah Habitat", DiffToSummary(old, updated))
}

func TestDiffToSummaryThreeOrMoreChangesCollapseToCount(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.NamaIndonesia = "Mangga Arumanis"
	updated.NamaLatin = "Mangifera indica L."
	updated.Habitat = "Dataran rendah"

	summary := DiffToSummary(old, updated)

	assert.Equal(t, "Mengupdate 3 data detail", summary)
	assert.NotContains(t, summary, "Nama Indonesia")
}

func TestDiffToSummaryOnlyGenusAndSpesiesDescriptionsCompared(t *testing.T) {
	old := basePlant()
	old.TaxonomyDescriptions = datatypes.NewJSONType(map[string]string{
		"kingdom": "kerajaan tumbuhan",
		"genus":   "genus mangga",
		"spesies": "spesies mangga",
	})

	updated := basePlant()
	updated.TaxonomyDescriptions = datatypes.NewJSONType(map[string]string{
		"kingdom": "DESKRIPSI BARU",
		"genus":   "genus mangga",
		"spesies": "spesies mangga",
	})

	// A kingdom-only description edit is invisible to the summary
	assert.Equal(t, "Melakukan update data", DiffToSummary(old, updated))

	updated.TaxonomyDescriptions = datatypes.NewJSONType(map[string]string{
		"kingdom": "DESKRIPSI BARU",
		"genus":   "genus mangga diperbarui",
		"spesies": "spesies mangga",
	})
	assert.Equal(t, "Mengupdate deskripsi Genus", DiffToSummary(old, updated))
}

func TestDiffToSummarySpesiesDescriptionChange(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.TaxonomyDescriptions = datatypes.NewJSONType(map[string]string{
		"spesies": "deskripsi spesies",
	})

	assert.Equal(t, "Mengupdate deskripsi Spesies", DiffToSummary(old, updated))
}

func TestDiffToSummaryImageAdditionAndChange(t *testing.T) {
	old := basePlant()
	old.Images = datatypes.NewJSONType(map[string]string{
		models.PartLeaf: "https://img.example/daun-v1.jpg",
	})

	updated := basePlant()
	updated.Images = datatypes.NewJSONType(map[string]string{
		models.PartLeaf: "https://img.example/daun-v2.jpg",
		models.PartRoot: "https://img.example/akar.jpg",
	})

	// Fixed part order: root before leaf
	assert.Equal(t, "Menambahkan/Mengupdate foto Akar, Menambahkan/Mengupdate foto Daun",
		DiffToSummary(old, updated))
}

func TestDiffToSummaryImageRemovalIsNotReported(t *testing.T) {
	old := basePlant()
	old.Images = datatypes.NewJSONType(map[string]string{
		models.PartLeaf: "https://img.example/daun.jpg",
		models.PartRoot: "https://img.example/akar.jpg",
	})

	updated := basePlant()
	updated.Images = datatypes.NewJSONType(map[string]string{
		models.PartLeaf: "https://img.example/daun.jpg",
	})

	assert.Equal(t, "Melakukan update data", DiffToSummary(old, updated))
}

func TestDiffToSummaryUnknownImageKeyUsesRawKey(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.Images = datatypes.NewJSONType(map[string]string{
		"bark": "https://img.example/kulit.jpg",
	})

	assert.Equal(t, "Menambahkan/Mengupdate foto bark", DiffToSummary(old, updated))
}

func TestDiffToSummaryMixedChangesCountEverySource(t *testing.T) {
	old := basePlant()
	updated := basePlant()
	updated.Genus = "Garcinia"
	updated.TaxonomyDescriptions = datatypes.NewJSONType(map[string]string{
		"genus": "genus baru",
	})
	updated.Images = datatypes.NewJSONType(map[string]string{
		models.PartFullPlant: "https://img.example/pohon.jpg",
	})

	assert.Equal(t, "Mengupdate 3 data detail", DiffToSummary(old, updated))
}
