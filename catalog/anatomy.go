package catalog

import "github.com/scifanor/scifanor-backend/models"

// AnatomyPart is one clickable region of the interactive plant diagram:
// the part key, its display label and icon glyph, and the image the viewer
// opens when the part is selected.
type AnatomyPart struct {
	Part  string `json:"part"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	URL   string `json:"url"`
}

var anatomyParts = map[string]AnatomyPart{
	models.PartFullPlant: {Part: models.PartFullPlant, Label: "Tumbuhan Utuh", Icon: "🌳"},
	models.PartRoot:      {Part: models.PartRoot, Label: "Akar", Icon: "🌱"},
	models.PartStem:      {Part: models.PartStem, Label: "Batang", Icon: "🎋"},
	models.PartLeaf:      {Part: models.PartLeaf, Label: "Daun", Icon: "🍃"},
	models.PartFruit:     {Part: models.PartFruit, Label: "Bunga/Buah", Icon: "🌸"},
	models.PartFlower:    {Part: models.PartFlower, Label: "Bunga", Icon: "🌺"},
}

// BuildAnatomyMap turns a plant's image map into the ordered part list the
// interactive diagram and thumbnail gallery render. Parts without an image
// are omitted entirely; an empty result means the caller shows the
// "no detail images available" state instead of an empty diagram.
func BuildAnatomyMap(images map[string]string) []AnatomyPart {
	parts := make([]AnatomyPart, 0, len(models.ImageParts))
	for _, key := range models.ImageParts {
		url := images[key]
		if url == "" {
			continue
		}
		part := anatomyParts[key]
		part.URL = url
		parts = append(parts, part)
	}
	return parts
}

// PartLabel returns the display label for a part key, falling back to the
// raw key for unrecognized parts.
func PartLabel(part string) string {
	if p, ok := anatomyParts[part]; ok {
		return p.Label
	}
	return part
}

// IsImagePart reports whether the key is one of the recognized part keys.
func IsImagePart(part string) bool {
	_, ok := anatomyParts[part]
	return ok
}
