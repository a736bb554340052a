package search

import "testing"

func hasTerm(set map[string]struct{}, term string) bool {
	_, ok := set[term]
	return ok
}

// TestExpandPullsInWholeGroup verifies that matching a related term brings
// in the base term and the rest of the group.
func TestExpandPullsInWholeGroup(t *testing.T) {
	table, err := NewSynonymTable()
	if err != nil {
		t.Fatalf("NewSynonymTable: %v", err)
	}

	out := table.Expand([]string{"sea"})
	for _, term := range []string{"sea", "ocean", "waves", "coast"} {
		if !hasTerm(out, term) {
			t.Errorf("Expand missing %q", term)
		}
	}
}

// TestExpandDoesNotCascade verifies expansion is one level: terms added by
// a group never trigger further groups.
func TestExpandDoesNotCascade(t *testing.T) {
	table, err := newSynonymTable([]synonymGroup{
		{"first", []string{"second"}},
		{"second", []string{"third"}},
	})
	if err != nil {
		t.Fatalf("newSynonymTable: %v", err)
	}

	out := table.Expand([]string{"first"})
	if !hasTerm(out, "second") {
		t.Error("Expand should include directly related term")
	}
	if hasTerm(out, "third") {
		t.Error("Expand cascaded through an added term")
	}
}

// TestExpandUnknownTokenPassesThrough verifies tokens outside every group
// survive expansion untouched.
func TestExpandUnknownTokenPassesThrough(t *testing.T) {
	table, err := NewSynonymTable()
	if err != nil {
		t.Fatalf("NewSynonymTable: %v", err)
	}

	out := table.Expand([]string{"zanzibar"})
	if !hasTerm(out, "zanzibar") {
		t.Error("Expand dropped an unknown token")
	}
	if len(out) != 1 {
		t.Errorf("Expand added %d unexpected terms", len(out)-1)
	}
}

// TestNewSynonymTableRejectsBadGroups verifies validation of base terms.
func TestNewSynonymTableRejectsBadGroups(t *testing.T) {
	if _, err := newSynonymTable([]synonymGroup{{"", []string{"x"}}}); err == nil {
		t.Error("expected error for empty base term")
	}
	if _, err := newSynonymTable([]synonymGroup{
		{"blue", []string{"azure"}},
		{"blue", []string{"navy"}},
	}); err == nil {
		t.Error("expected error for duplicate base term")
	}
}
