package catalog

import (
	"strings"
	"testing"
)

func validRecords() []Artwork {
	return []Artwork{
		{ID: 1, Name: "Neon Pride", Description: "bold strokes", Price: 1500, Origin: "USA"},
		{ID: 2, Name: "Ocean Dream", Description: "azure waves", Price: 2100, Origin: "Greece"},
		{ID: 3, Name: "Golden Gaze", Description: "warm light", Price: 2600, Origin: "USA"},
	}
}

// TestLoadEmbeddedCatalog verifies the embedded data parses and validates.
func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, a := range c.All() {
		if a.Name == "" || a.ID <= 0 {
			t.Errorf("invalid embedded record: %+v", a)
		}
	}
}

// TestNewValidation covers each rejection case.
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		records []Artwork
		wantErr string
	}{
		{
			name:    "non-positive id",
			records: []Artwork{{ID: 0, Name: "Void", Price: 10}},
			wantErr: "invalid id",
		},
		{
			name: "duplicate id",
			records: []Artwork{
				{ID: 1, Name: "First", Price: 10},
				{ID: 1, Name: "Second", Price: 10},
			},
			wantErr: "duplicate artwork id",
		},
		{
			name:    "empty name",
			records: []Artwork{{ID: 1, Name: "", Price: 10}},
			wantErr: "empty name",
		},
		{
			name: "duplicate name case-insensitive",
			records: []Artwork{
				{ID: 1, Name: "Neon Pride", Price: 10},
				{ID: 2, Name: "NEON PRIDE", Price: 10},
			},
			wantErr: "duplicate artwork name",
		},
		{
			name:    "negative price",
			records: []Artwork{{ID: 1, Name: "Debt", Price: -1}},
			wantErr: "negative price",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

// TestByNameCaseInsensitive verifies exact-name lookup ignores case.
func TestByNameCaseInsensitive(t *testing.T) {
	c, err := New(validRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a, ok := c.ByName("ocean dream")
	if !ok || a.ID != 2 {
		t.Errorf("ByName(ocean dream) = %+v, %v", a, ok)
	}
	a, ok = c.ByName("OCEAN DREAM")
	if !ok || a.ID != 2 {
		t.Errorf("ByName(OCEAN DREAM) = %+v, %v", a, ok)
	}
	if _, ok := c.ByName("Ocean"); ok {
		t.Error("partial name should not match")
	}
}

// TestByID verifies lookup by identity key.
func TestByID(t *testing.T) {
	c, err := New(validRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if a, ok := c.ByID(3); !ok || a.Name != "Golden Gaze" {
		t.Errorf("ByID(3) = %+v, %v", a, ok)
	}
	if _, ok := c.ByID(99); ok {
		t.Error("ByID(99) should miss")
	}
}

// TestOriginsDistinctFirstSeen verifies origin deduplication keeps catalog order.
func TestOriginsDistinctFirstSeen(t *testing.T) {
	c, err := New(validRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := c.Origins()
	want := []string{"USA", "Greece"}
	if len(got) != len(want) {
		t.Fatalf("Origins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Origins[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
