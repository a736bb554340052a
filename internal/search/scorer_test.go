package search

import (
	"testing"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Artwork{
		{ID: 1, Name: "Neon Pride", Description: "bold rainbow colors across a night skyline", Price: 1500, Origin: "USA"},
		{ID: 2, Name: "Jungle Rhythm", Description: "emerald foliage pulsing with life", Price: 2200, Origin: "Brazil"},
		{ID: 3, Name: "Ocean Dream", Description: "azure waves rolling along the coast", Price: 1800, Origin: "Greece"},
		{ID: 4, Name: "Golden Gaze", Description: "a portrait bathed in golden light", Price: 2600, Origin: "India"},
		{ID: 5, Name: "Quiet Forest", Description: "pines and woodland stillness", Price: 1200, Origin: "Norway"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	table, err := NewSynonymTable()
	if err != nil {
		t.Fatalf("NewSynonymTable: %v", err)
	}
	return NewScorer(table)
}

// TestScoreNameMatch verifies a name-only token resolves to exactly its
// record.
func TestScoreNameMatch(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	got := s.Score("rhythm", cat, 5)
	if len(got) != 1 {
		t.Fatalf("Score = %d results, want 1", len(got))
	}
	if got[0].Name != "Jungle Rhythm" {
		t.Errorf("top result = %q, want %q", got[0].Name, "Jungle Rhythm")
	}
}

// TestScoreSynonymExpansion verifies a query term surfaces records matched
// only through its synonym group, ranked by accumulated weight.
func TestScoreSynonymExpansion(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	// "woods" expands to the forest group: forest hits the name, pines and
	// woodland hit the description.
	got := s.Score("woods", cat, 5)
	if len(got) < 2 {
		t.Fatalf("Score = %d results, want at least 2", len(got))
	}
	if got[0].Name != "Quiet Forest" {
		t.Errorf("top result = %q, want %q", got[0].Name, "Quiet Forest")
	}

	found := false
	for _, a := range got {
		if a.Name == "Jungle Rhythm" {
			found = true
		}
	}
	if !found {
		t.Error("synonym match Jungle Rhythm missing from results")
	}
}

// TestScoreZeroExcluded verifies records with no token or phrase overlap
// are dropped, never ranked last.
func TestScoreZeroExcluded(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	got := s.Score("zebra stampede", cat, 5)
	if len(got) != 0 {
		t.Errorf("Score = %d results, want 0", len(got))
	}
}

// TestScoreEmptyQueryReturnsHead verifies the empty query short-circuits to
// the first topK catalog records without scoring.
func TestScoreEmptyQueryReturnsHead(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	got := s.Score("   ", cat, 3)
	if len(got) != 3 {
		t.Fatalf("Score = %d results, want 3", len(got))
	}
	for i, want := range []string{"Neon Pride", "Jungle Rhythm", "Ocean Dream"} {
		if got[i].Name != want {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

// TestScorePhraseBonus verifies a multi-word phrase hit pushes its record
// to the top.
func TestScorePhraseBonus(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	got := s.Score("golden light", cat, 5)
	if len(got) == 0 {
		t.Fatal("Score returned no results")
	}
	if got[0].Name != "Golden Gaze" {
		t.Errorf("top result = %q, want %q", got[0].Name, "Golden Gaze")
	}
}

// TestScoreOriginMatch verifies origin hits score and surface the record.
func TestScoreOriginMatch(t *testing.T) {
	cat := newTestCatalog(t)
	s := newTestScorer(t)

	got := s.Score("brazil", cat, 5)
	if len(got) != 1 {
		t.Fatalf("Score = %d results, want 1", len(got))
	}
	if got[0].Name != "Jungle Rhythm" {
		t.Errorf("top result = %q, want %q", got[0].Name, "Jungle Rhythm")
	}
}
