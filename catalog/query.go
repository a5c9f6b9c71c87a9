package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied to the visible subset.
type SortKey string

const (
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortDateNew  SortKey = "date-new"
	SortDateOld  SortKey = "date-old"
)

// ParseSortKey maps a query-string value to a SortKey, defaulting to name-asc.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameDesc, SortDateNew, SortDateOld:
		return SortKey(s)
	default:
		return SortNameAsc
	}
}

// Query describes one evaluation of the catalog filter.
type Query struct {
	SearchText     string
	CategoryFilter string
	Sort           SortKey
}

// Result is the visible subset plus the counts the page header renders.
// NoMatches is set when at least one filter axis is active and nothing
// matched, so the caller can show a "no results" state distinct from the
// catalog being empty altogether.
type Result struct {
	Visible      []PlantView `json:"visible"`
	TotalCount   int         `json:"totalCount"`
	VisibleCount int         `json:"visibleCount"`
	NoMatches    bool        `json:"noMatches"`
}

// Aggregates are computed over the full collection, never the filtered subset.
type Aggregates struct {
	ContributorCount   int      `json:"contributorCount"`
	CollaborationCount int      `json:"collaborationCount"`
	Families           []string `json:"families"`
}

// Indonesian names sort per Indonesian collation rules, not byte order.
var nameCollator = collate.New(language.Indonesian)

// ApplyFilters evaluates a query against the full in-memory collection and
// returns the visible subset with its counts. The input slice is not
// modified; ordering of equal elements is preserved (stable sort).
func ApplyFilters(collection []PlantView, query Query) Result {
	search := strings.ToLower(strings.TrimSpace(query.SearchText))
	family := query.CategoryFilter

	visible := make([]PlantView, 0, len(collection))
	if search == "" && family == "" {
		// Nothing to filter; the full collection passes through.
		visible = append(visible, collection...)
	} else {
		for _, view := range collection {
			if matchesSearch(view, search) && matchesFamily(view, family) {
				visible = append(visible, view)
			}
		}
	}

	sortViews(visible, query.Sort)

	filterActive := search != "" || family != ""
	return Result{
		Visible:      visible,
		TotalCount:   len(collection),
		VisibleCount: len(visible),
		NoMatches:    len(visible) == 0 && filterActive,
	}
}

// matchesSearch reports whether the trimmed, lowercased search text is a
// substring of the Indonesian name, the Latin name, or the family. The three
// fields are matched independently.
func matchesSearch(view PlantView, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(view.NamaIndonesia), search) ||
		strings.Contains(strings.ToLower(view.NamaLatin), search) ||
		strings.Contains(strings.ToLower(view.Famili), search)
}

// matchesFamily requires an exact family match; an empty filter matches all.
func matchesFamily(view PlantView, family string) bool {
	return family == "" || view.Famili == family
}

func sortViews(views []PlantView, key SortKey) {
	switch key {
	case SortNameDesc:
		sort.SliceStable(views, func(i, j int) bool {
			return nameCollator.CompareString(views[i].NamaIndonesia, views[j].NamaIndonesia) > 0
		})
	case SortDateNew:
		// Missing timestamps are the zero time, so descending order puts
		// them last without special casing.
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		})
	case SortDateOld:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		})
	default:
		sort.SliceStable(views, func(i, j int) bool {
			return nameCollator.CompareString(views[i].NamaIndonesia, views[j].NamaIndonesia) < 0
		})
	}
}

// ComputeAggregates derives the catalog-wide stats from the full collection:
// the distinct contributor count (union of creators and collaborators, so a
// user who both created and collaborated counts once), the total number of
// collaboration links, and the ascending distinct family list used to
// populate the category filter options.
func ComputeAggregates(collection []PlantView) Aggregates {
	contributors := make(map[uuid.UUID]struct{})
	families := make(map[string]struct{})
	collaborations := 0

	for _, view := range collection {
		if view.CreatedBy != nil {
			contributors[*view.CreatedBy] = struct{}{}
		}
		for _, collab := range view.Collaborators {
			contributors[collab.UserID] = struct{}{}
		}
		collaborations += len(view.Collaborators)

		if view.Famili != "" {
			families[view.Famili] = struct{}{}
		}
	}

	familyList := make([]string, 0, len(families))
	for family := range families {
		familyList = append(familyList, family)
	}
	sort.Strings(familyList)

	return Aggregates{
		ContributorCount:   len(contributors),
		CollaborationCount: collaborations,
		Families:           familyList,
	}
}
