package api

import (
	"github.com/kailash19961996/Artisty/internal/agent"
	"github.com/kailash19961996/Artisty/internal/catalog"
)

// UIEvent is a page effect produced while applying agent actions. The
// frontend replays these after rendering the chat reply.
type UIEvent struct {
	Type    string `json:"type"`
	Target  string `json:"target,omitempty"`
	Artwork string `json:"artwork,omitempty"`
}

// knownRegions are the scrollable page regions the frontend registers.
// Unknown regions collapse to the results grid rather than being dropped.
var knownRegions = map[string]struct{}{
	agent.RegionResults: {},
	"cart":              {},
	"top":               {},
}

// uiRecorder collects UI events for a single request.
type uiRecorder struct {
	events []UIEvent
}

func newUIRecorder() *uiRecorder {
	return &uiRecorder{}
}

func (u *uiRecorder) ScrollTo(region string) {
	if _, ok := knownRegions[region]; !ok {
		region = agent.RegionResults
	}
	u.events = append(u.events, UIEvent{Type: "scroll_to", Target: region})
}

func (u *uiRecorder) ScrollBy(direction string) {
	u.events = append(u.events, UIEvent{Type: "scroll_by", Target: direction})
}

func (u *uiRecorder) OpenQuickView(a catalog.Artwork) {
	u.events = append(u.events, UIEvent{Type: "open_quick_view", Artwork: a.Name})
}

func (u *uiRecorder) OpenCheckout() {
	u.events = append(u.events, UIEvent{Type: "open_checkout"})
}

// Events returns the recorded effects, never nil.
func (u *uiRecorder) Events() []UIEvent {
	if u.events == nil {
		return []UIEvent{}
	}
	return u.events
}
