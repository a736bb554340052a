package search

import (
	"strings"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

// FilterByKeyword returns every record whose name, description, or origin
// contains the query as a case-insensitive substring, in catalog order. No
// scoring is applied. An empty query returns the entire catalog.
func FilterByKeyword(query string, cat *catalog.Catalog) []catalog.Artwork {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]catalog.Artwork(nil), cat.All()...)
	}

	var out []catalog.Artwork
	for _, a := range cat.All() {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q) ||
			strings.Contains(strings.ToLower(a.Origin), q) {
			out = append(out, a)
		}
	}
	return out
}
