package agent

import (
	"reflect"
	"testing"
)

// TestDecodeWireKeepsOrder verifies typed decoding preserves array order.
func TestDecodeWireKeepsOrder(t *testing.T) {
	got := DecodeWire([]WireAction{
		{Type: "search", Value: "ocean"},
		{Type: "scroll", Value: "art-collection"},
		{Type: "add_to_cart", Value: "Ocean Dream"},
		{Type: "checkout"},
	})

	want := []Action{
		Search{Term: "ocean"},
		Scroll{Target: "art-collection"},
		AddToCart{Name: "Ocean Dream"},
		Checkout{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeWire = %v, want %v", got, want)
	}
}

// TestDecodeWireDropsInvalid verifies unknown types and malformed values
// are dropped without affecting neighbors.
func TestDecodeWireDropsInvalid(t *testing.T) {
	got := DecodeWire([]WireAction{
		{Type: "explode"},
		{Type: "quick_view"},
		{Type: "navigate", Value: "mars"},
		{Type: "navigate", Value: "cart"},
	})

	want := []Action{Navigate{Dest: DestCart}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeWire = %v, want %v", got, want)
	}
}

// TestDecodeActionsParsesJSON verifies the JSON entry point.
func TestDecodeActionsParsesJSON(t *testing.T) {
	got, err := DecodeActions([]byte(`[{"type":"search","value":"calm"},{"type":"navigate","value":"home"}]`))
	if err != nil {
		t.Fatalf("DecodeActions: %v", err)
	}
	want := []Action{Search{Term: "calm"}, Navigate{Dest: DestHome}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeActions = %v, want %v", got, want)
	}

	if _, err := DecodeActions([]byte(`{"not":"an array"}`)); err == nil {
		t.Error("expected error for non-array payload")
	}
}

// TestEncodeRoundTrip verifies Encode emits the wire shape DecodeWire
// accepts.
func TestEncodeRoundTrip(t *testing.T) {
	actions := []Action{
		Search{Term: "gold"},
		QuickView{Name: "Golden Gaze"},
		Navigate{Dest: DestCart},
		Checkout{},
	}

	wire := Encode(actions)
	back := DecodeWire(wire)
	if !reflect.DeepEqual(back, actions) {
		t.Errorf("round trip = %v, want %v", back, actions)
	}
}
