package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kailash19961996/Artisty/internal/agent"
)

const (
	streamingTimeout = 300 * time.Second
	maxResponseSize  = 1 << 20 // 1MB
)

// ErrBusy is returned when a send is attempted while another is in flight.
// Sends are serialized through a single slot; the caller must wait for the
// pending reply (or its cancellation) before sending again.
var ErrBusy = errors.New("chat request already in flight")

// Reply is the assembled backend response: the final text, displayed
// verbatim, plus the ordered action list for the dispatcher.
type Reply struct {
	Text    string
	Actions []agent.Action
}

// Client talks to the assistant backend. The backend answers either with a
// single JSON object or with an SSE stream of incremental chunks; both
// shapes assemble into the same Reply.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	slot       *semaphore.Weighted
}

// NewClient creates a Client for the given backend base URL. apiKey may be
// empty when the backend is unauthenticated; model may be empty to use the
// backend's default.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: streamingTimeout},
		slot:       semaphore.NewWeighted(1),
	}
}

type chatRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

type chatResponse struct {
	Response   string             `json:"response"`
	WebActions []agent.WireAction `json:"web_actions"`
}

// streamChunk is one SSE event from the backend. Actions may arrive early
// in an actions-only chunk; the terminal chunk carries is_complete and,
// optionally, the fully assembled text.
type streamChunk struct {
	Chunk        string             `json:"chunk"`
	IsComplete   bool               `json:"is_complete"`
	WebActions   []agent.WireAction `json:"web_actions"`
	FullResponse string             `json:"full_response"`
}

// Send posts the message and assembles the backend's reply. A second Send
// while one is pending fails fast with ErrBusy.
func (c *Client) Send(ctx context.Context, message string) (Reply, error) {
	if !c.slot.TryAcquire(1) {
		return Reply{}, ErrBusy
	}
	defer c.slot.Release(1)

	body, err := json.Marshal(chatRequest{Message: message, Model: c.model})
	if err != nil {
		return Reply{}, fmt.Errorf("marshaling request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, streamingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("sending chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Reply{}, fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		return parseStream(resp.Body)
	}
	return parseSingle(resp.Body)
}

func parseSingle(r io.Reader) (Reply, error) {
	var body chatResponse
	if err := json.NewDecoder(io.LimitReader(r, maxResponseSize)).Decode(&body); err != nil {
		return Reply{}, fmt.Errorf("decoding backend response: %w", err)
	}
	return Reply{
		Text:    strings.TrimSpace(body.Response),
		Actions: agent.DecodeWire(body.WebActions),
	}, nil
}

func parseStream(r io.Reader) (Reply, error) {
	var (
		text     strings.Builder
		wire     []agent.WireAction
		complete bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxResponseSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return Reply{}, fmt.Errorf("decoding stream chunk: %w", err)
		}

		text.WriteString(chunk.Chunk)
		if len(chunk.WebActions) > 0 && wire == nil {
			wire = chunk.WebActions
		}
		if chunk.IsComplete {
			complete = true
			if chunk.FullResponse != "" {
				text.Reset()
				text.WriteString(chunk.FullResponse)
			}
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Reply{}, fmt.Errorf("reading stream: %w", err)
	}
	if !complete {
		return Reply{}, fmt.Errorf("stream ended without a terminal chunk")
	}

	return Reply{
		Text:    strings.TrimSpace(text.String()),
		Actions: agent.DecodeWire(wire),
	}, nil
}
