package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Interaction sources.
const (
	SourceAssistant = "assistant"
	SourceFallback  = "fallback"
)

// Interaction is one logged chat exchange: the user's message, the reply
// shown to them, and the agent actions that were dispatched for it.
type Interaction struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	CreatedAt   time.Time `json:"created_at"`
	UserMessage string    `json:"user_message"`
	Response    string    `json:"response"`
	ActionsJSON string    `json:"actions_json"` // wire-shape action array stored as text
	Source      string    `json:"source"`       // "assistant" or "fallback"
}
