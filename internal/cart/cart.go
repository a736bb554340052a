package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kailash19961996/Artisty/internal/catalog"
)

// View identifies which storefront surface is active.
type View string

const (
	ViewGallery View = "gallery"
	ViewCart    View = "cart"
)

// Line is one occurrence of one artwork in the cart. Adding the same
// artwork twice yields two distinct lines.
type Line struct {
	ID      string          `json:"id"`
	Artwork catalog.Artwork `json:"artwork"`
}

// GroupedLine is the display grouping of cart lines by artwork.
type GroupedLine struct {
	Artwork  catalog.Artwork `json:"artwork"`
	Quantity int             `json:"quantity"`
}

// Owner holds the cart contents and the active view. It is the only place
// this state is mutated; handlers and the agent dispatcher go through its
// methods, never at the fields directly.
type Owner struct {
	mu    sync.Mutex
	lines []Line
	view  View
}

// NewOwner returns an Owner with an empty cart showing the gallery.
func NewOwner() *Owner {
	return &Owner{view: ViewGallery}
}

// AddLine appends a new line for the artwork. Duplicates are allowed.
func (o *Owner) AddLine(a catalog.Artwork) Line {
	o.mu.Lock()
	defer o.mu.Unlock()
	line := Line{ID: uuid.New().String(), Artwork: a}
	o.lines = append(o.lines, line)
	return line
}

// RemoveLine deletes the first line referencing artworkID and reports
// whether one was removed. Other lines keep their relative order.
func (o *Owner) RemoveLine(artworkID int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, l := range o.lines {
		if l.Artwork.ID == artworkID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the current cart lines in insertion order.
func (o *Owner) Lines() []Line {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Line(nil), o.lines...)
}

// Len returns the number of cart lines, duplicates included.
func (o *Owner) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.lines)
}

// TotalPrice sums the prices of all lines, duplicates included.
func (o *Owner) TotalPrice() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	var total float64
	for _, l := range o.lines {
		total += l.Artwork.Price
	}
	return total
}

// UniqueLines groups lines by artwork ID with a quantity each, in the order
// the artworks first entered the cart.
func (o *Owner) UniqueLines() []GroupedLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	index := make(map[int]int)
	var grouped []GroupedLine
	for _, l := range o.lines {
		if i, ok := index[l.Artwork.ID]; ok {
			grouped[i].Quantity++
			continue
		}
		index[l.Artwork.ID] = len(grouped)
		grouped = append(grouped, GroupedLine{Artwork: l.Artwork, Quantity: 1})
	}
	return grouped
}

// SwitchView overwrites the active view unconditionally.
func (o *Owner) SwitchView(v View) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.view = v
}

// View returns the active view.
func (o *Owner) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}
