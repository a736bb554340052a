package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kailash19961996/Artisty/internal/agent"
	"github.com/kailash19961996/Artisty/internal/chat"
	"github.com/kailash19961996/Artisty/internal/storage"
)

type chatRequest struct {
	Message string `json:"message"`
}

// handleChat forwards the visitor message to the assistant backend, applies
// any returned agent actions against the visitor session, and logs the
// exchange. When the backend is unreachable the canned responder answers
// instead, so the endpoint never fails on upstream trouble.
func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		sess := sessionFrom(r)

		reply, source, err := resolveReply(r, deps, req.Message)
		if err != nil {
			if errors.Is(err, chat.ErrBusy) {
				httpError(w, http.StatusConflict, "busy", "another message is still being processed")
				return
			}
			httpError(w, http.StatusBadGateway, "api_error", "assistant request failed: %v", err)
			return
		}

		rec := newUIRecorder()
		dispatcher := agent.NewDispatcher(deps.Search, rec, deps.Bus)
		dispatcher.Apply(r.Context(), sess, reply.Actions)

		logInteraction(deps, sess.ID, req.Message, reply, source)

		writeJSON(w, map[string]any{
			"response":    reply.Text,
			"web_actions": agent.Encode(reply.Actions),
			"ui_events":   rec.Events(),
			"agent_used":  source == storage.SourceAssistant,
			"status":      "success",
		})
	}
}

// resolveReply asks the assistant backend first and falls back to the canned
// responder on transport failure. A busy slot is surfaced to the caller
// rather than swallowed; retrying immediately would queue behind the
// in-flight exchange anyway.
func resolveReply(r *http.Request, deps Deps, message string) (chat.Reply, string, error) {
	if deps.Assistant == nil {
		return deps.Fallback.Respond(message), storage.SourceFallback, nil
	}

	reply, err := deps.Assistant.Send(r.Context(), message)
	if err == nil {
		return reply, storage.SourceAssistant, nil
	}
	if errors.Is(err, chat.ErrBusy) {
		return chat.Reply{}, "", err
	}

	slog.Warn("assistant unavailable, using fallback", "error", err)
	return deps.Fallback.Respond(message), storage.SourceFallback, nil
}

func logInteraction(deps Deps, sessionID, message string, reply chat.Reply, source string) {
	if deps.Store == nil {
		return
	}

	actionsJSON := "[]"
	if b, err := json.Marshal(agent.Encode(reply.Actions)); err == nil {
		actionsJSON = string(b)
	}

	err := deps.Store.SaveInteraction(storage.Interaction{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		CreatedAt:   time.Now().UTC(),
		UserMessage: message,
		Response:    reply.Text,
		ActionsJSON: actionsJSON,
		Source:      source,
	})
	if err != nil {
		slog.Warn("failed to log interaction", "error", err)
	}
}
