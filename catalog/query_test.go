package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scifanor/scifanor-backend/models"
)

func makeView(name, latin, family string, created time.Time) PlantView {
	return PlantView{
		Plant: models.Plant{
			ID:            uuid.New(),
			NamaIndonesia: name,
			NamaLatin:     latin,
			Famili:        family,
			CreatedAt:     created,
		},
		ImageByPart:   map[string]string{},
		Collaborators: []CollaboratorView{},
	}
}

func TestApplyFiltersEmptyQueryPassesEverythingThrough(t *testing.T) {
	collection := []PlantView{
		makeView("Mangga", "Mangifera indica", "Anacardiaceae", time.Now()),
		makeView("Jambu Biji", "Psidium guajava", "Myrtaceae", time.Now()),
	}

	result := ApplyFilters(collection, Query{})

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 2, result.VisibleCount)
	assert.False(t, result.NoMatches)
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	collection := []PlantView{
		makeView("Mangga", "Mangifera indica", "Anacardiaceae", time.Now()),
		makeView("Manggis", "Garcinia mangostana", "Clusiaceae", time.Now()),
		makeView("Jambu Biji", "Psidium guajava", "Myrtaceae", time.Now()),
	}
	query := Query{SearchText: "mang", Sort: SortNameAsc}

	first := ApplyFilters(collection, query)
	second := ApplyFilters(first.Visible, query)

	assert.Equal(t, first.VisibleCount, second.VisibleCount)
	for i := range first.Visible {
		assert.Equal(t, first.Visible[i].NamaIndonesia, second.Visible[i].NamaIndonesia)
	}
}

func TestApplyFiltersSearchMatchesNameLatinAndFamily(t *testing.T) {
	collection := []PlantView{
		makeView("Mangga", "Mangifera indica", "Anacardiaceae", time.Now()),
		makeView("Manggis", "Garcinia mangostana", "Clusiaceae", time.Now()),
		makeView("Jambu Biji", "Psidium guajava", "Myrtaceae", time.Now()),
	}

	result := ApplyFilters(collection, Query{SearchText: "  MANG  "})

	// "Mangga" by name, "Manggis" by name (and latin); "Jambu Biji" stays out
	require.Equal(t, 2, result.VisibleCount)
	assert.Equal(t, "Mangga", result.Visible[0].NamaIndonesia)
	assert.Equal(t, "Manggis", result.Visible[1].NamaIndonesia)
	assert.Equal(t, 3, result.TotalCount)
}

func TestApplyFiltersSearchMatchesLatinNameOnly(t *testing.T) {
	collection := []PlantView{
		makeView("Jambu Biji", "Psidium guajava", "Myrtaceae", time.Now()),
		makeView("Mangga", "Mangifera indica", "Anacardiaceae", time.Now()),
	}

	result := ApplyFilters(collection, Query{SearchText: "psidium"})

	require.Equal(t, 1, result.VisibleCount)
	assert.Equal(t, "Jambu Biji", result.Visible[0].NamaIndonesia)
}

func TestApplyFiltersFamilyIsExactAndCombinesWithSearch(t *testing.T) {
	collection := []PlantView{
		makeView("Jambu Biji", "Psidium guajava", "Myrtaceae", time.Now()),
		makeView("Jambu Air", "Syzygium aqueum", "Myrtaceae", time.Now()),
		makeView("Jambu Mete", "Anacardium occidentale", "Anacardiaceae", time.Now()),
	}

	result := ApplyFilters(collection, Query{SearchText: "jambu", CategoryFilter: "Myrtaceae"})

	require.Equal(t, 2, result.VisibleCount)
	for _, view := range result.Visible {
		assert.Equal(t, "Myrtaceae", view.Famili)
	}

	// Family filter is exact, never substring
	none := ApplyFilters(collection, Query{CategoryFilter: "Myrta"})
	assert.Zero(t, none.VisibleCount)
	assert.True(t, none.NoMatches)
}

func TestApplyFiltersNoMatchesOnlyWhenFilterActive(t *testing.T) {
	empty := ApplyFilters([]PlantView{}, Query{})
	assert.False(t, empty.NoMatches, "empty catalog without filters is not a no-match state")

	filtered := ApplyFilters([]PlantView{}, Query{SearchText: "anything"})
	assert.True(t, filtered.NoMatches)
}

func TestSortDateNewPutsMissingTimestampsLast(t *testing.T) {
	newest := makeView("Baru", "", "", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	older := makeView("Lama", "", "", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	missing := makeView("Tanpa Tanggal", "", "", time.Time{})

	result := ApplyFilters([]PlantView{missing, older, newest}, Query{Sort: SortDateNew})

	require.Equal(t, 3, result.VisibleCount)
	assert.Equal(t, "Baru", result.Visible[0].NamaIndonesia)
	assert.Equal(t, "Lama", result.Visible[1].NamaIndonesia)
	assert.Equal(t, "Tanpa Tanggal", result.Visible[2].NamaIndonesia)
}

func TestSortDateOldPutsMissingTimestampsFirst(t *testing.T) {
	newest := makeView("Baru", "", "", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	missing := makeView("Tanpa Tanggal", "", "", time.Time{})

	result := ApplyFilters([]PlantView{newest, missing}, Query{Sort: SortDateOld})

	require.Equal(t, 2, result.VisibleCount)
	assert.Equal(t, "Tanpa Tanggal", result.Visible[0].NamaIndonesia)
}

func TestSortNameDescReversesNameAsc(t *testing.T) {
	collection := []PlantView{
		makeView("Cemara", "", "", time.Now()),
		makeView("Anggrek", "", "", time.Now()),
		makeView("Bambu", "", "", time.Now()),
	}

	asc := ApplyFilters(collection, Query{Sort: SortNameAsc})
	desc := ApplyFilters(collection, Query{Sort: SortNameDesc})

	require.Equal(t, 3, asc.VisibleCount)
	assert.Equal(t, "Anggrek", asc.Visible[0].NamaIndonesia)
	assert.Equal(t, "Cemara", desc.Visible[0].NamaIndonesia)
}

func TestParseSortKeyDefaultsToNameAsc(t *testing.T) {
	assert.Equal(t, SortNameAsc, ParseSortKey(""))
	assert.Equal(t, SortNameAsc, ParseSortKey("bogus"))
	assert.Equal(t, SortDateNew, ParseSortKey("date-new"))
}

func TestComputeAggregatesCountsContributorsOnce(t *testing.T) {
	creator := uuid.New()
	collaborator := uuid.New()

	plantA := makeView("Mangga", "", "Anacardiaceae", time.Now())
	plantA.CreatedBy = &creator
	plantA.Collaborators = []CollaboratorView{{UserID: collaborator}}

	// Same user creates a second plant and also collaborates on it; neither
	// role may double-count them.
	plantB := makeView("Jambu Biji", "", "Myrtaceae", time.Now())
	plantB.CreatedBy = &creator
	plantB.Collaborators = []CollaboratorView{{UserID: creator}}

	aggregates := ComputeAggregates([]PlantView{plantA, plantB})

	assert.Equal(t, 2, aggregates.ContributorCount)
	assert.Equal(t, 2, aggregates.CollaborationCount)
	assert.Equal(t, []string{"Anacardiaceae", "Myrtaceae"}, aggregates.Families)
}

func TestComputeAggregatesIgnoresFilteredSubset(t *testing.T) {
	creator := uuid.New()
	plant := makeView("Mangga", "", "Anacardiaceae", time.Now())
	plant.CreatedBy = &creator

	collection := []PlantView{plant, makeView("Jambu Biji", "", "Myrtaceae", time.Now())}

	// Aggregates are always computed over the full collection; the caller
	// passes the unfiltered slice regardless of the active query.
	aggregates := ComputeAggregates(collection)
	assert.Len(t, aggregates.Families, 2)
}
