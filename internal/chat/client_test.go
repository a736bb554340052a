package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/kailash19961996/Artisty/internal/agent"
)

// TestSendParsesJSONResponse verifies a plain JSON reply assembles text and
// typed actions.
func TestSendParsesJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req["message"] != "show me ocean art" {
			t.Errorf("message = %q", req["message"])
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":"Here are some ocean pieces.","web_actions":[{"type":"search","value":"ocean"},{"type":"scroll","value":"art-collection"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	reply, err := c.Send(context.Background(), "show me ocean art")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if reply.Text != "Here are some ocean pieces." {
		t.Errorf("Text = %q", reply.Text)
	}
	want := []agent.Action{agent.Search{Term: "ocean"}, agent.Scroll{Target: "art-collection"}}
	if !reflect.DeepEqual(reply.Actions, want) {
		t.Errorf("Actions = %v, want %v", reply.Actions, want)
	}
}

// TestSendParsesSSEStream verifies chunk accumulation, the early
// actions-only chunk, and the terminal full_response override.
func TestSendParsesSSEStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"chunk\":\"\",\"web_actions\":[{\"type\":\"search\",\"value\":\"gold\"}]}\n\n")
		fmt.Fprint(w, "data: {\"chunk\":\"Here are \"}\n\n")
		fmt.Fprint(w, "data: {\"chunk\":\"golden pieces\"}\n\n")
		fmt.Fprint(w, "data: {\"chunk\":\"\",\"is_complete\":true,\"full_response\":\"Here are golden pieces.\"}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	reply, err := c.Send(context.Background(), "gold")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if reply.Text != "Here are golden pieces." {
		t.Errorf("Text = %q, want terminal full_response", reply.Text)
	}
	want := []agent.Action{agent.Search{Term: "gold"}}
	if !reflect.DeepEqual(reply.Actions, want) {
		t.Errorf("Actions = %v, want %v", reply.Actions, want)
	}
}

// TestSendStreamWithoutTerminalChunk verifies a truncated stream is an
// error, not a silent partial reply.
func TestSendStreamWithoutTerminalChunk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"chunk\":\"partial\"}\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	if _, err := c.Send(context.Background(), "hi"); err == nil {
		t.Error("expected error for stream without terminal chunk")
	}
}

// TestSendUpstreamError verifies non-200 responses surface as errors with
// the body attached.
func TestSendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	_, err := c.Send(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// TestSendBusy verifies the single in-flight slot: a concurrent second Send
// fails fast with ErrBusy.
func TestSendBusy(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(inFlight)
		<-release
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":"done","web_actions":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := c.Send(context.Background(), "first"); err != nil {
			t.Errorf("first Send: %v", err)
		}
	}()

	// The first request holds the slot once its handler is entered.
	<-inFlight
	_, busyErr := c.Send(context.Background(), "second")
	close(release)
	wg.Wait()

	if !errors.Is(busyErr, ErrBusy) {
		t.Errorf("second Send error = %v, want ErrBusy", busyErr)
	}
}
