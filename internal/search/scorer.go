package search

import (
	"sort"
	"strings"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

// Field weights for relevance scoring. Exact name hits count double,
// origin hits count one-and-a-half times their base weight.
const (
	nameWeight   = 3.0
	descWeight   = 2.0
	originWeight = 2.0

	partialMinLen = 4   // query tokens shorter than this skip partial matching
	phraseMinLen  = 5   // normalized queries this long or longer earn the phrase bonus
	phraseBonus   = 4.0
)

// scoredCandidate pairs a record with its accumulated relevance score.
// Candidates live only for the duration of one Score call.
type scoredCandidate struct {
	artwork catalog.Artwork
	score   float64
}

// Scorer ranks catalog records against a synonym-expanded query.
type Scorer struct {
	synonyms *SynonymTable
}

// NewScorer creates a Scorer using the given synonym table.
func NewScorer(synonyms *SynonymTable) *Scorer {
	return &Scorer{synonyms: synonyms}
}

// Score ranks every record in the catalog against the query and returns the
// records with a non-zero score, ordered by score descending. Ties keep
// catalog order (single stable sort). An empty or whitespace-only query
// returns the first topK records unchanged, with no scoring performed.
func (s *Scorer) Score(query string, cat *catalog.Catalog, topK int) []catalog.Artwork {
	normalized := Normalize(query)
	if normalized == "" {
		all := cat.All()
		if topK > len(all) {
			topK = len(all)
		}
		return append([]catalog.Artwork(nil), all[:topK]...)
	}

	expanded := s.synonyms.Expand(Tokenize(query))

	candidates := make([]scoredCandidate, 0, cat.Len())
	for _, a := range cat.All() {
		sc := scoreRecord(expanded, normalized, a)
		if sc > 0 {
			candidates = append(candidates, scoredCandidate{artwork: a, score: sc})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]catalog.Artwork, len(candidates))
	for i, c := range candidates {
		out[i] = c.artwork
	}
	return out
}

func scoreRecord(queryTokens map[string]struct{}, normalizedQuery string, a catalog.Artwork) float64 {
	nameTokens := Tokenize(a.Name)
	descTokens := Tokenize(a.Description)
	originTokens := Tokenize(a.Origin)

	var score float64
	for qt := range queryTokens {
		if containsToken(nameTokens, qt) {
			score += nameWeight * 2
		}
		if containsToken(descTokens, qt) {
			score += descWeight
		}
		if containsToken(originTokens, qt) {
			score += originWeight * 1.5
		}
		if len(qt) >= partialMinLen {
			if partialMatch(nameTokens, qt) {
				score += nameWeight
			}
			if partialMatch(descTokens, qt) {
				score += descWeight * 0.6
			}
		}
	}

	if len(normalizedQuery) >= phraseMinLen {
		haystack := Normalize(a.Name + " " + a.Description + " " + a.Origin)
		if strings.Contains(haystack, normalizedQuery) {
			score += phraseBonus
		}
	}
	return score
}

func containsToken(tokens []string, t string) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}

// partialMatch reports whether t is a substring of any token or any token
// is a substring of t.
func partialMatch(tokens []string, t string) bool {
	for _, tok := range tokens {
		if strings.Contains(tok, t) || strings.Contains(t, tok) {
			return true
		}
	}
	return false
}
