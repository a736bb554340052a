package catalog

import (
	"sort"
	"strings"
)

// Curated search vocabulary that the catalog descriptions draw from. These
// lists mirror the gallery's style/color/theme taxonomy; origins come from
// the catalog itself.
var (
	styleTerms = []string{
		"abstract", "modern", "traditional", "landscape", "nature", "urban",
		"contemporary", "ancient", "geometric", "musical", "surreal", "crystalline",
	}
	colorTerms = []string{
		"blue", "red", "green", "golden", "purple", "silver", "turquoise",
		"crimson", "emerald", "azure", "sapphire", "jade", "copper", "pink", "orange",
	}
	themeTerms = []string{
		"ocean", "sea", "forest", "trees", "desert", "mountains", "city", "night",
		"dawn", "sunset", "flowers", "water", "snow", "fire", "light", "shadows",
		"birds", "animals", "stars", "cosmic",
	}
)

// StyleTerms returns a copy of the style vocabulary.
func StyleTerms() []string { return append([]string(nil), styleTerms...) }

// ColorTerms returns a copy of the color vocabulary.
func ColorTerms() []string { return append([]string(nil), colorTerms...) }

// ThemeTerms returns a copy of the theme vocabulary.
func ThemeTerms() []string { return append([]string(nil), themeTerms...) }

const minKeywordLen = 4 // shorter words are too noisy to be useful triggers

// KeywordIndex holds every search term guaranteed to hit the catalog:
// origins, the curated style/color/theme vocabulary, and words longer than
// three characters taken from artwork names and descriptions. The chat
// fallback responder validates its search triggers against this set so a
// triggered search always returns results.
type KeywordIndex struct {
	terms map[string]struct{}
}

// NewKeywordIndex builds the index from the given catalog.
func NewKeywordIndex(c *Catalog) *KeywordIndex {
	terms := make(map[string]struct{})
	add := func(t string) {
		t = strings.ToLower(strings.Trim(t, ".,()!?\"'"))
		if len(t) >= minKeywordLen {
			terms[t] = struct{}{}
		}
	}

	for _, t := range styleTerms {
		add(t)
	}
	for _, t := range colorTerms {
		add(t)
	}
	for _, t := range themeTerms {
		add(t)
	}
	for _, a := range c.All() {
		add(a.Origin)
		for _, w := range strings.Fields(a.Name) {
			add(w)
		}
		for _, w := range strings.Fields(a.Description) {
			add(w)
		}
	}

	return &KeywordIndex{terms: terms}
}

// Contains reports whether term is a valid search keyword.
func (k *KeywordIndex) Contains(term string) bool {
	_, ok := k.terms[strings.ToLower(term)]
	return ok
}

// Closest returns term itself when it is a valid keyword, otherwise the
// lexically first keyword that contains term or is contained by it. Returns
// false when no keyword is close enough.
func (k *KeywordIndex) Closest(term string) (string, bool) {
	term = strings.ToLower(term)
	if k.Contains(term) {
		return term, true
	}
	if term == "" {
		return "", false
	}

	var candidates []string
	for t := range k.terms {
		if strings.Contains(t, term) || strings.Contains(term, t) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)
	return candidates[0], true
}

// Len returns the number of indexed keywords.
func (k *KeywordIndex) Len() int {
	return len(k.terms)
}
