package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kailash19961996/Artisty/internal/agent"
	"github.com/kailash19961996/Artisty/internal/cart"
	"github.com/kailash19961996/Artisty/internal/catalog"
	"github.com/kailash19961996/Artisty/internal/chat"
	"github.com/kailash19961996/Artisty/internal/search"
	"github.com/kailash19961996/Artisty/internal/session"
	"github.com/kailash19961996/Artisty/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

const sessionCookie = "artisty_session"

// Assistant abstracts the chat backend for the API layer.
type Assistant interface {
	Send(ctx context.Context, message string) (chat.Reply, error)
}

// Deps holds the storefront handler dependencies. Assistant and Store are
// optional; a nil Assistant routes every chat through the fallback responder,
// a nil Store disables interaction logging.
type Deps struct {
	Catalog    *catalog.Catalog
	Search     *search.Orchestrator
	Sessions   *session.Manager
	Assistant  Assistant
	Fallback   *chat.Fallback
	Store      *storage.Store
	Bus        *agent.Bus
	AdminToken string
}

// NewHandler returns the storefront REST API handler.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(withSession(deps.Sessions))

		r.Get("/api/catalog", handleCatalog(deps))
		r.Get("/api/catalog/{id}", handleArtwork(deps))
		r.Get("/api/search", handleSearch(deps))
		r.Post("/api/chat", handleChat(deps))
		r.Get("/api/cart", handleGetCart(deps))
		r.Post("/api/cart", handleAddToCart(deps))
		r.Delete("/api/cart/{artworkID}", handleRemoveFromCart(deps))
		r.Post("/api/view", handleSwitchView(deps))
	})

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(deps.AdminToken))

		r.Get("/api/interactions", handleListInteractions(deps))
		r.Get("/api/interactions/{id}", handleGetInteraction(deps))
		r.Delete("/api/interactions/{id}", handleDeleteInteraction(deps))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type sessionCtxKey struct{}

// withSession resolves the visitor session from a cookie, creating both the
// cookie and the session on first contact.
func withSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(sessionCookie); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}

			sess := sessions.Get(id)
			if sess.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(sessionCtxKey{}).(*session.Session)
}

func handleCatalog(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"artworks": deps.Catalog.All(),
			"total":    deps.Catalog.Len(),
		})
	}
}

func handleArtwork(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid artwork id")
			return
		}
		a, ok := deps.Catalog.ByID(id)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found", "artwork %d not found", id)
			return
		}
		writeJSON(w, a)
	}
}

func handleSearch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		page := parseIntParam(r, "page", 0, 0)

		result := deps.Search.Page(query, page)

		sess := sessionFrom(r)
		sess.SetDisplayed(query, result.Items)

		writeJSON(w, map[string]any{
			"query":    query,
			"page":     page,
			"items":    result.Items,
			"has_more": result.HasMore,
			"explicit": result.Explicit,
			"total":    result.Total,
		})
	}
}

type addToCartRequest struct {
	ArtworkID int `json:"artwork_id"`
}

func handleGetCart(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cartPayload(sessionFrom(r).Cart()))
	}
}

func handleAddToCart(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req addToCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		a, ok := deps.Catalog.ByID(req.ArtworkID)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found", "artwork %d not found", req.ArtworkID)
			return
		}

		c := sessionFrom(r).Cart()
		line := c.AddLine(a)
		writeJSON(w, map[string]any{
			"line": line,
			"cart": cartPayload(c),
		})
	}
}

func handleRemoveFromCart(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "artworkID"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid artwork id")
			return
		}

		c := sessionFrom(r).Cart()
		if !c.RemoveLine(id) {
			httpError(w, http.StatusNotFound, "not_found", "artwork %d is not in the cart", id)
			return
		}
		writeJSON(w, cartPayload(c))
	}
}

type switchViewRequest struct {
	View string `json:"view"`
}

func handleSwitchView(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req switchViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		v := cart.View(req.View)
		if v != cart.ViewGallery && v != cart.ViewCart {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "view must be %q or %q", cart.ViewGallery, cart.ViewCart)
			return
		}

		c := sessionFrom(r).Cart()
		c.SwitchView(v)
		writeJSON(w, map[string]string{"view": string(c.View())})
	}
}

func cartPayload(c *cart.Owner) map[string]any {
	return map[string]any{
		"items":       c.UniqueLines(),
		"count":       c.Len(),
		"total_price": c.TotalPrice(),
		"view":        c.View(),
	}
}

func handleListInteractions(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "interaction logging is disabled")
			return
		}

		limit := parseIntParam(r, "limit", 20, 100)
		offset := parseIntParam(r, "offset", 0, 0)

		interactions, err := deps.Store.ListInteractions(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list interactions: %v", err)
			return
		}
		if interactions == nil {
			interactions = []storage.Interaction{}
		}
		writeJSON(w, interactions)
	}
}

func handleGetInteraction(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "interaction logging is disabled")
			return
		}

		interaction, err := deps.Store.GetInteraction(chi.URLParam(r, "id"))
		if err != nil {
			storageError(w, err, "interaction")
			return
		}
		writeJSON(w, interaction)
	}
}

func handleDeleteInteraction(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "interaction logging is disabled")
			return
		}

		if err := deps.Store.DeleteInteraction(chi.URLParam(r, "id")); err != nil {
			storageError(w, err, "interaction")
			return
		}
		writeJSON(w, map[string]string{"status": "deleted"})
	}
}

func storageError(w http.ResponseWriter, err error, kind string) {
	if errors.Is(err, storage.ErrNotFound) {
		httpError(w, http.StatusNotFound, "not_found", "%s not found", kind)
		return
	}
	httpError(w, http.StatusInternalServerError, "api_error", "failed to access %s: %v", kind, err)
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
