package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/artworks.json
var artworksJSON []byte

// Artwork is one catalog record. Records are loaded once at startup and
// never mutated; every search path is a pure read over them.
type Artwork struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Origin      string  `json:"origin"`
	Image       string  `json:"image"`
}

// Catalog is the fixed in-memory artwork collection with name and ID indexes.
type Catalog struct {
	records []Artwork
	byName  map[string]Artwork
	byID    map[int]Artwork
}

// Load parses and validates the embedded artwork data.
func Load() (*Catalog, error) {
	var records []Artwork
	if err := json.Unmarshal(artworksJSON, &records); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return New(records)
}

// New builds a Catalog from the given records. IDs must be positive and
// unique; names must be non-empty and unique case-insensitively (exact-name
// lookups rely on this); prices must be non-negative.
func New(records []Artwork) (*Catalog, error) {
	byName := make(map[string]Artwork, len(records))
	byID := make(map[int]Artwork, len(records))
	for _, a := range records {
		if a.ID <= 0 {
			return nil, fmt.Errorf("artwork %q: invalid id %d", a.Name, a.ID)
		}
		if a.Name == "" {
			return nil, fmt.Errorf("artwork %d: empty name", a.ID)
		}
		if a.Price < 0 {
			return nil, fmt.Errorf("artwork %q: negative price %v", a.Name, a.Price)
		}
		if _, dup := byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate artwork id %d", a.ID)
		}
		key := strings.ToLower(a.Name)
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("duplicate artwork name %q", a.Name)
		}
		byID[a.ID] = a
		byName[key] = a
	}
	return &Catalog{records: records, byName: byName, byID: byID}, nil
}

// All returns the records in catalog order. The slice is shared; callers
// must treat it as read-only.
func (c *Catalog) All() []Artwork {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ByName looks up a record by exact name, case-insensitively.
func (c *Catalog) ByName(name string) (Artwork, bool) {
	a, ok := c.byName[strings.ToLower(name)]
	return a, ok
}

// ByID looks up a record by its identity key.
func (c *Catalog) ByID(id int) (Artwork, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Origins returns the distinct origins in first-seen catalog order.
func (c *Catalog) Origins() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range c.records {
		if _, ok := seen[a.Origin]; ok {
			continue
		}
		seen[a.Origin] = struct{}{}
		out = append(out, a.Origin)
	}
	return out
}
