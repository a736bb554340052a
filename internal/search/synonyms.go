package search

import "fmt"

// synonymGroup ties a base term to its related terms. Matching any member
// of the group pulls in the whole group.
type synonymGroup struct {
	base    string
	related []string
}

// defaultSynonymGroups covers the domain vocabulary the gallery is searched
// with: regions, colors, themes, and moods.
var defaultSynonymGroups = []synonymGroup{
	{"ocean", []string{"sea", "water", "waves", "coast", "marine", "tide"}},
	{"forest", []string{"trees", "woods", "woodland", "jungle", "pines"}},
	{"mountain", []string{"mountains", "peak", "summit", "alpine", "ridge"}},
	{"desert", []string{"dunes", "sand", "arid", "mirage"}},
	{"city", []string{"urban", "street", "metropolis", "downtown"}},
	{"night", []string{"moonlit", "starlit", "midnight", "twilight", "evening"}},
	{"flower", []string{"flowers", "floral", "blossom", "bloom", "wildflowers", "lotus"}},
	{"blue", []string{"azure", "sapphire", "cobalt", "navy", "turquoise"}},
	{"red", []string{"crimson", "scarlet", "ruby"}},
	{"green", []string{"emerald", "jade"}},
	{"gold", []string{"golden", "amber", "saffron"}},
	{"purple", []string{"violet", "lavender"}},
	{"white", []string{"ivory", "porcelain", "marble"}},
	{"calm", []string{"calming", "peaceful", "serene", "tranquil", "quiet", "silent"}},
	{"bright", []string{"colorful", "vibrant", "vivid", "carnival"}},
	{"winter", []string{"snow", "frost", "frozen", "arctic", "ice"}},
	{"space", []string{"cosmic", "stars", "celestial", "nebula", "galaxy"}},
	{"asia", []string{"japan", "china", "korea", "thailand", "vietnam", "india"}},
	{"europe", []string{"france", "italy", "spain", "germany", "greece", "norway", "england"}},
}

// SynonymTable expands query tokens with domain synonyms. Built once at
// startup; expansion is one level only and groups never chain through each
// other.
type SynonymTable struct {
	groups []synonymGroup
}

// NewSynonymTable builds the default table. It fails on conflicting base
// terms, which would make group membership ambiguous.
func NewSynonymTable() (*SynonymTable, error) {
	return newSynonymTable(defaultSynonymGroups)
}

func newSynonymTable(groups []synonymGroup) (*SynonymTable, error) {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if g.base == "" {
			return nil, fmt.Errorf("synonym group with empty base term")
		}
		if _, dup := seen[g.base]; dup {
			return nil, fmt.Errorf("conflicting synonym base term %q", g.base)
		}
		seen[g.base] = struct{}{}
	}
	return &SynonymTable{groups: groups}, nil
}

// Expand returns the input tokens as a set, plus every synonym group any of
// them belongs to (base term included).
func (t *SynonymTable) Expand(tokens []string) map[string]struct{} {
	input := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		input[tok] = struct{}{}
	}

	out := make(map[string]struct{}, len(input))
	for tok := range input {
		out[tok] = struct{}{}
	}

	for _, g := range t.groups {
		if !t.groupMatches(g, input) {
			continue
		}
		out[g.base] = struct{}{}
		for _, s := range g.related {
			out[s] = struct{}{}
		}
	}
	return out
}

// groupMatches checks group membership against the original input tokens
// only, so expansion never cascades across unrelated groups.
func (t *SynonymTable) groupMatches(g synonymGroup, input map[string]struct{}) bool {
	if _, ok := input[g.base]; ok {
		return true
	}
	for _, s := range g.related {
		if _, ok := input[s]; ok {
			return true
		}
	}
	return false
}
