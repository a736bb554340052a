package search

import "testing"

// TestFilterByKeywordSubstring verifies case-insensitive substring matching
// across name, description, and origin, in catalog order.
func TestFilterByKeywordSubstring(t *testing.T) {
	cat := newTestCatalog(t)

	got := FilterByKeyword("GOLD", cat)
	if len(got) != 1 {
		t.Fatalf("FilterByKeyword = %d results, want 1", len(got))
	}
	if got[0].Name != "Golden Gaze" {
		t.Errorf("result = %q, want %q", got[0].Name, "Golden Gaze")
	}

	// Origin field participates too.
	got = FilterByKeyword("greece", cat)
	if len(got) != 1 || got[0].Name != "Ocean Dream" {
		t.Errorf("FilterByKeyword(greece) = %v, want Ocean Dream", got)
	}
}

// TestFilterByKeywordEmptyQuery verifies an empty query returns the full
// catalog.
func TestFilterByKeywordEmptyQuery(t *testing.T) {
	cat := newTestCatalog(t)

	got := FilterByKeyword("  ", cat)
	if len(got) != cat.Len() {
		t.Errorf("FilterByKeyword = %d results, want %d", len(got), cat.Len())
	}
}
