package chat

import (
	"log/slog"
	"strings"

	"github.com/kailash19961996/Artisty/internal/agent"
	"github.com/kailash19961996/Artisty/internal/catalog"
)

// Fallback generates a canned local reply when the assistant backend is
// unavailable, from simple keyword matching over the user's message. Every
// suggested search trigger is validated against the keyword index so a
// triggered search always hits the catalog; triggers that cannot be
// repaired are dropped and the reply becomes text-only.
type Fallback struct {
	keywords *catalog.KeywordIndex
	origins  []string
}

// NewFallback builds a Fallback over the given catalog and keyword index.
func NewFallback(cat *catalog.Catalog, keywords *catalog.KeywordIndex) *Fallback {
	origins := cat.Origins()
	lowered := make([]string, len(origins))
	for i, o := range origins {
		lowered[i] = strings.ToLower(o)
	}
	return &Fallback{keywords: keywords, origins: lowered}
}

type suggestion struct {
	trigger string
	text    string
}

// Respond produces the degraded reply for a user message. It never fails;
// at worst the reply carries no actions.
func (f *Fallback) Respond(message string) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))
	s := f.suggest(msg)

	trigger, ok := f.keywords.Closest(s.trigger)
	if s.trigger != "" && !ok {
		slog.Debug("fallback trigger rejected", "trigger", s.trigger)
	}
	if s.trigger == "" || !ok {
		return Reply{Text: s.text}
	}

	return Reply{
		Text: s.text,
		Actions: agent.DecodeWire([]agent.WireAction{
			{Type: "search", Value: trigger},
			{Type: "scroll", Value: agent.RegionResults},
		}),
	}
}

func (f *Fallback) suggest(msg string) suggestion {
	if containsAny(msg, "cheap", "affordable", "budget", "inexpensive", "lower price") {
		return suggestion{
			trigger: "wildflowers",
			text:    "I'm having trouble reaching our assistant, but I can still help! Our most wallet-friendly pieces start around $1,200 — here are some lovely options.",
		}
	}
	if containsAny(msg, "expensive", "premium", "luxury", "high-end", "costly") {
		return suggestion{
			trigger: "dancing",
			text:    "The assistant is offline right now, but for something truly special, take a look at our premium collection.",
		}
	}

	for _, origin := range f.origins {
		if strings.Contains(msg, origin) {
			return suggestion{
				trigger: origin,
				text:    "I can't reach our assistant at the moment, but here is what we have from that part of the world.",
			}
		}
	}
	for _, lists := range [][]string{catalog.StyleTerms(), catalog.ColorTerms(), catalog.ThemeTerms()} {
		for _, term := range lists {
			if strings.Contains(msg, term) {
				return suggestion{
					trigger: term,
					text:    "Our assistant is taking a break, but these pieces should match what you're after.",
				}
			}
		}
	}

	if containsAny(msg, "calm", "peaceful", "serene", "tranquil", "relax") {
		return suggestion{
			trigger: "moonlit",
			text:    "The assistant is unavailable, but for something soothing, these quiet pieces are favorites.",
		}
	}
	if containsAny(msg, "colorful", "bright", "vibrant") {
		return suggestion{
			trigger: "carnival",
			text:    "The assistant is offline, but if you want color, these pieces practically glow.",
		}
	}

	if len(msg) <= 5 {
		return suggestion{
			text: "Our assistant is temporarily unavailable. Feel free to browse the gallery or use the search bar above.",
		}
	}
	switch {
	case containsAny(msg, "hello", "hi ", "good", "nice", "beautiful"):
		return suggestion{
			trigger: "celestial",
			text:    "Welcome to Artisty! Our assistant is resting, but here are some showstoppers to get you started.",
		}
	case containsAny(msg, "help", "show", "see", "find"):
		return suggestion{
			trigger: "golden",
			text:    "I can't reach our assistant right now, but browsing is the best part anyway — try these.",
		}
	default:
		return suggestion{
			trigger: "mystic",
			text:    "Our assistant is temporarily unavailable, but the gallery is open. Here are some pieces our visitors love.",
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
