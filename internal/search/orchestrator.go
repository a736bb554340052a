package search

import (
	"strings"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

const (
	defaultPageSize = 12
	defaultTopK     = 5
)

// Page is one page of search results.
type Page struct {
	Items []catalog.Artwork `json:"items"`
	// HasMore reports whether later pages exist. Always false for explicit
	// selections, which are returned whole.
	HasMore bool `json:"has_more"`
	// Explicit marks results resolved from agent-supplied artwork names.
	Explicit bool `json:"explicit"`
	Total    int  `json:"total"`
}

// Orchestrator decides, per query, between the explicit-selection path, the
// scored+keyword merge, and the full catalog, and paginates the outcome.
type Orchestrator struct {
	cat      *catalog.Catalog
	scorer   *Scorer
	pageSize int
	topK     int
}

// NewOrchestrator wires the search paths together. Non-positive pageSize
// and topK fall back to 12 and 5.
func NewOrchestrator(cat *catalog.Catalog, synonyms *SynonymTable, pageSize, topK int) *Orchestrator {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Orchestrator{
		cat:      cat,
		scorer:   NewScorer(synonyms),
		pageSize: pageSize,
		topK:     topK,
	}
}

// Results computes the full result list for a query:
//
//	empty query      → the whole catalog, catalog order
//	explicit match   → the agent-ordered selection (explicit=true)
//	otherwise        → top-K scored records, then keyword-filtered records
//	                   not already present, first-seen order
func (o *Orchestrator) Results(query string) (items []catalog.Artwork, explicit bool) {
	if strings.TrimSpace(query) == "" {
		return append([]catalog.Artwork(nil), o.cat.All()...), false
	}

	if matched := MatchExplicit(query, o.cat); len(matched) > 0 {
		return matched, true
	}

	scored := o.scorer.Score(query, o.cat, o.topK)
	if len(scored) > o.topK {
		scored = scored[:o.topK]
	}
	filtered := FilterByKeyword(query, o.cat)

	merged := make([]catalog.Artwork, 0, len(scored)+len(filtered))
	seen := make(map[int]struct{}, len(scored)+len(filtered))
	for _, a := range scored {
		merged = append(merged, a)
		seen[a.ID] = struct{}{}
	}
	for _, a := range filtered {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		merged = append(merged, a)
		seen[a.ID] = struct{}{}
	}
	return merged, false
}

// Page returns the page-th page (zero-based) of results for a query. Every
// page is computed from the same source list, so load-more never switches
// source mid-query. Explicit selections always come back whole.
func (o *Orchestrator) Page(query string, page int) Page {
	items, explicit := o.Results(query)
	total := len(items)

	if explicit {
		return Page{Items: items, HasMore: false, Explicit: true, Total: total}
	}

	if page < 0 {
		page = 0
	}
	start := page * o.pageSize
	if start > total {
		start = total
	}
	end := start + o.pageSize
	if end > total {
		end = total
	}
	return Page{
		Items:   items[start:end],
		HasMore: end < total,
		Total:   total,
	}
}
