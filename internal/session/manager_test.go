package session

import (
	"testing"
	"time"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

var initialSet = []catalog.Artwork{
	{ID: 1, Name: "Neon Pride", Price: 1500, Origin: "USA"},
	{ID: 2, Name: "Golden Gaze", Price: 2600, Origin: "India"},
}

// TestGetCreatesAndReuses verifies unknown IDs mint a session and known
// IDs return the same one.
func TestGetCreatesAndReuses(t *testing.T) {
	m := NewManager(initialSet, 0)

	s1 := m.Get("")
	if s1.ID == "" {
		t.Fatal("new session has no ID")
	}
	if len(s1.Displayed()) != len(initialSet) {
		t.Errorf("new session displays %d items, want %d", len(s1.Displayed()), len(initialSet))
	}
	if s1.Cart() == nil || s1.Cart().Len() != 0 {
		t.Error("new session cart is not empty")
	}

	s2 := m.Get(s1.ID)
	if s2 != s1 {
		t.Error("known ID returned a different session")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}

	s3 := m.Get("not-a-known-id")
	if s3 == s1 {
		t.Error("unknown ID returned an existing session")
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

// TestSetDisplayedTracksQuery verifies the displayed set and query update
// together.
func TestSetDisplayedTracksQuery(t *testing.T) {
	m := NewManager(initialSet, 0)
	s := m.Get("")

	s.SetDisplayed("gold", initialSet[1:])
	if s.LastQuery() != "gold" {
		t.Errorf("LastQuery = %q, want gold", s.LastQuery())
	}
	if got := s.Displayed(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Displayed = %v", got)
	}
}

// TestPruneExpiresIdleSessions verifies idle sessions are removed and
// recently touched ones kept.
func TestPruneExpiresIdleSessions(t *testing.T) {
	m := NewManager(initialSet, time.Hour)

	base := time.Now()
	m.now = func() time.Time { return base }

	idle := m.Get("")
	_ = idle

	// Advance past the TTL, then touch a second session at the new time.
	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	fresh := m.Get("")

	removed := m.prune()
	if removed != 1 {
		t.Errorf("prune removed %d sessions, want 1", removed)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if got := m.Get(fresh.ID); got != fresh {
		t.Error("fresh session was pruned")
	}
}
