package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scifanor/scifanor-backend/models"
)

// User-facing labels for the scalar fields the diff reports on. Strings are
// Indonesian because the activity feed is; existing audit rows already use
// these exact phrases.
var fieldLabels = map[string]string{
	"nama_indonesia": "Nama Indonesia",
	"nama_latin":     "Nama Latin",
	"famili":         "Famili",
	"genus":          "Genus",
	"spesies":        "Spesies",
	"habitat":        "Habitat",
}

var imageLabels = map[string]string{
	models.PartFullPlant: "Tumbuhan Utuh",
	models.PartRoot:      "Akar",
	models.PartStem:      "Batang",
	models.PartLeaf:      "Daun",
	models.PartFruit:     "Buah",
	models.PartFlower:    "Bunga",
}

// DiffToSummary compares two versions of a plant record and produces the
// single human-readable line persisted into the activity log. It is pure;
// the caller writes the result into an ActivityLog entry.
//
// The comparison is deliberately partial in two ways that must not be
// "fixed", because the produced phrases are already live audit data:
// taxonomy descriptions are only checked on the genus and spesies sub-keys,
// and image removals are not reported (only additions and changes are).
func DiffToSummary(oldPlant, newPlant models.Plant) string {
	var changes []string

	scalars := []struct {
		key      string
		old, new string
	}{
		{"nama_indonesia", oldPlant.NamaIndonesia, newPlant.NamaIndonesia},
		{"nama_latin", oldPlant.NamaLatin, newPlant.NamaLatin},
		{"famili", oldPlant.Famili, newPlant.Famili},
		{"genus", oldPlant.Genus, newPlant.Genus},
		{"spesies", oldPlant.Spesies, newPlant.Spesies},
		{"habitat", oldPlant.Habitat, newPlant.Habitat},
	}
	for _, field := range scalars {
		if field.old != field.new {
			changes = append(changes, "Mengubah "+fieldLabels[field.key])
		}
	}

	if newDesc := newPlant.TaxonomyDescriptionMap(); newDesc != nil {
		oldDesc := oldPlant.TaxonomyDescriptionMap()
		if oldDesc["genus"] != newDesc["genus"] {
			changes = append(changes, "Mengupdate deskripsi Genus")
		}
		if oldDesc["spesies"] != newDesc["spesies"] {
			changes = append(changes, "Mengupdate deskripsi Spesies")
		}
	}

	if newImages := newPlant.ImageMap(); newImages != nil {
		oldImages := oldPlant.ImageMap()
		// Fixed part order keeps the summary deterministic.
		for _, part := range imagePartsAndExtras(newImages) {
			if newImages[part] != "" && newImages[part] != oldImages[part] {
				label := imageLabels[part]
				if label == "" {
					label = part
				}
				changes = append(changes, "Menambahkan/Mengupdate foto "+label)
			}
		}
	}

	if len(changes) == 0 {
		return "Melakukan update data"
	}
	if len(changes) > 2 {
		return fmt.Sprintf("Mengupdate %d data detail", len(changes))
	}
	return strings.Join(changes, ", ")
}

// imagePartsAndExtras returns the recognized parts in display order followed
// by any unrecognized keys in sorted order.
func imagePartsAndExtras(images map[string]string) []string {
	known := make(map[string]bool, len(models.ImageParts))
	parts := make([]string, 0, len(images))
	for _, part := range models.ImageParts {
		known[part] = true
		parts = append(parts, part)
	}

	extras := make([]string, 0)
	for key := range images {
		if !known[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(parts, extras...)
}
