package search

import "strings"

// stopWords are dropped during tokenization: articles, prepositions,
// conjunctions, and common possessives that carry no search signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "by": {}, "from": {}, "into": {}, "over": {}, "under": {},
	"and": {}, "or": {}, "but": {}, "nor": {},
	"my": {}, "your": {}, "our": {}, "its": {}, "his": {}, "her": {}, "their": {},
	"is": {}, "are": {}, "was": {}, "were": {},
	"some": {}, "any": {}, "that": {}, "this": {},
}

// Normalize lowercases text, replaces every character outside [a-z0-9\s]
// with a space, collapses whitespace runs, and trims.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text, splits it on spaces, and removes stop words.
// Empty input yields no tokens.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
