package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Destination is a navigation target.
type Destination string

const (
	DestCart Destination = "cart"
	DestHome Destination = "home"
)

// Action is one typed instruction from the chat backend. The concrete types
// below are the only implementations; the untyped {type, value} wire shape
// is resolved into them at the deserialization boundary.
type Action interface {
	actionType() string
}

type Search struct{ Term string }
type Scroll struct{ Target string }
type QuickView struct{ Name string }
type AddToCart struct{ Name string }
type Navigate struct{ Dest Destination }
type Checkout struct{}

func (Search) actionType() string    { return "search" }
func (Scroll) actionType() string    { return "scroll" }
func (QuickView) actionType() string { return "quick_view" }
func (AddToCart) actionType() string { return "add_to_cart" }
func (Navigate) actionType() string  { return "navigate" }
func (Checkout) actionType() string  { return "checkout" }

// WireAction is the backend's JSON shape for one action.
type WireAction struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// DecodeWire resolves wire actions into typed actions, preserving order.
// Unknown types and malformed values are dropped here, at the boundary;
// they never reach the dispatcher.
func DecodeWire(wire []WireAction) []Action {
	var out []Action
	for _, w := range wire {
		a, err := decodeOne(w)
		if err != nil {
			slog.Debug("dropping agent action", "type", w.Type, "error", err)
			continue
		}
		out = append(out, a)
	}
	return out
}

// DecodeActions parses a JSON action array and resolves it into typed
// actions.
func DecodeActions(data []byte) ([]Action, error) {
	var wire []WireAction
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing actions: %w", err)
	}
	return DecodeWire(wire), nil
}

func decodeOne(w WireAction) (Action, error) {
	switch w.Type {
	case "search":
		return Search{Term: w.Value}, nil
	case "scroll":
		return Scroll{Target: w.Value}, nil
	case "quick_view":
		if w.Value == "" {
			return nil, fmt.Errorf("quick_view requires a value")
		}
		return QuickView{Name: w.Value}, nil
	case "add_to_cart":
		if w.Value == "" {
			return nil, fmt.Errorf("add_to_cart requires a value")
		}
		return AddToCart{Name: w.Value}, nil
	case "navigate":
		switch Destination(w.Value) {
		case DestCart, DestHome:
			return Navigate{Dest: Destination(w.Value)}, nil
		default:
			return nil, fmt.Errorf("unknown navigate destination %q", w.Value)
		}
	case "checkout":
		return Checkout{}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", w.Type)
	}
}

// Encode converts typed actions back to the wire shape, for API responses
// and interaction logging.
func Encode(actions []Action) []WireAction {
	out := make([]WireAction, 0, len(actions))
	for _, a := range actions {
		w := WireAction{Type: a.actionType()}
		switch a := a.(type) {
		case Search:
			w.Value = a.Term
		case Scroll:
			w.Value = a.Target
		case QuickView:
			w.Value = a.Name
		case AddToCart:
			w.Value = a.Name
		case Navigate:
			w.Value = string(a.Dest)
		}
		out = append(out, w)
	}
	return out
}
