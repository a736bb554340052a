package search

import (
	"strings"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

// MatchExplicit treats the query as agent-supplied artwork names
// concatenated pairwise ("neon pride jungle rhythm") and resolves each
// consecutive token pair to a catalog record by exact name, preserving the
// order the pairs appear in the query. An odd trailing token is dropped.
// Queries with fewer than two tokens never match. Pairs that resolve to no
// record are skipped.
func MatchExplicit(query string, cat *catalog.Catalog) []catalog.Artwork {
	tokens := strings.Fields(query)
	if len(tokens) < 2 {
		return nil
	}

	var out []catalog.Artwork
	for i := 0; i+1 < len(tokens); i += 2 {
		name := strings.ToLower(tokens[i] + " " + tokens[i+1])
		if a, ok := cat.ByName(name); ok {
			out = append(out, a)
		}
	}
	return out
}
