package agent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/kailash19961996/Artisty/internal/cart"
	"github.com/kailash19961996/Artisty/internal/catalog"
	"github.com/kailash19961996/Artisty/internal/search"
)

const (
	// RegionResults is the logical name of the gallery results region.
	RegionResults = "art-collection"

	scrollAfterSearchDelay = 300 * time.Millisecond
	checkoutModalDelay     = 400 * time.Millisecond
)

// Searcher runs a search query and returns the first page of results.
type Searcher interface {
	Page(query string, page int) search.Page
}

// Session is the per-user view state the dispatcher mutates: the displayed
// result set and the cart/view owner.
type Session interface {
	SetDisplayed(query string, items []catalog.Artwork)
	Displayed() []catalog.Artwork
	Cart() *cart.Owner
}

// UI is the capability handed to the dispatcher by the shell that owns the
// actual scroll targets and overlays. The dispatcher knows logical region
// names and directions, never markup.
type UI interface {
	ScrollTo(region string)
	ScrollBy(direction string)
	OpenQuickView(a catalog.Artwork)
	OpenCheckout()
}

// Dispatcher applies agent actions, in order, as view-state mutations.
// Each action's effect completes before the next begins; the fixed delays
// that sequence UI affordances (search→scroll, checkout→modal) are part of
// the owning action's effect.
type Dispatcher struct {
	searcher Searcher
	ui       UI
	bus      *Bus

	// sleep is swapped out in tests so delays run instantly.
	sleep func(ctx context.Context, d time.Duration)
}

// NewDispatcher creates a Dispatcher. bus may be nil when no cart feedback
// consumer exists.
func NewDispatcher(searcher Searcher, ui UI, bus *Bus) *Dispatcher {
	return &Dispatcher{
		searcher: searcher,
		ui:       ui,
		bus:      bus,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Apply executes every action against the session in array order. Lookup
// misses are silent no-ops and never abort the remainder of the batch.
func (d *Dispatcher) Apply(ctx context.Context, sess Session, actions []Action) {
	for _, a := range actions {
		if ctx.Err() != nil {
			return
		}
		switch a := a.(type) {
		case Search:
			d.applySearch(ctx, sess, a)
		case Scroll:
			d.applyScroll(a)
		case QuickView:
			d.applyQuickView(sess, a)
		case AddToCart:
			d.applyAddToCart(sess, a)
		case Navigate:
			d.applyNavigate(sess, a)
		case Checkout:
			d.applyCheckout(ctx, sess)
		}
	}
}

func (d *Dispatcher) applySearch(ctx context.Context, sess Session, a Search) {
	page := d.searcher.Page(a.Term, 0)
	sess.SetDisplayed(a.Term, page.Items)
	// Let the results render before scrolling to them.
	d.sleep(ctx, scrollAfterSearchDelay)
	d.ui.ScrollTo(RegionResults)
}

func (d *Dispatcher) applyScroll(a Scroll) {
	target := strings.ToLower(strings.TrimSpace(a.Target))
	switch target {
	case RegionResults, "results", "gallery":
		d.ui.ScrollTo(RegionResults)
	case "up":
		d.ui.ScrollBy("up")
	default:
		d.ui.ScrollBy("down")
	}
}

func (d *Dispatcher) applyQuickView(sess Session, a QuickView) {
	art, ok := findDisplayed(sess.Displayed(), a.Name)
	if !ok {
		slog.Debug("quick_view target not displayed", "name", a.Name)
		return
	}
	d.ui.OpenQuickView(art)
}

func (d *Dispatcher) applyAddToCart(sess Session, a AddToCart) {
	art, ok := findDisplayed(sess.Displayed(), a.Name)
	if !ok {
		slog.Debug("add_to_cart target not displayed", "name", a.Name)
		return
	}
	sess.Cart().AddLine(art)
	if d.bus != nil {
		d.bus.Publish(CartFeedback{ArtworkID: art.ID})
	}
}

func (d *Dispatcher) applyNavigate(sess Session, a Navigate) {
	switch a.Dest {
	case DestCart:
		sess.Cart().SwitchView(cart.ViewCart)
	case DestHome:
		sess.Cart().SwitchView(cart.ViewGallery)
	}
}

func (d *Dispatcher) applyCheckout(ctx context.Context, sess Session) {
	sess.Cart().SwitchView(cart.ViewCart)
	// The cart view settles before the confirmation modal opens.
	d.sleep(ctx, checkoutModalDelay)
	d.ui.OpenCheckout()
}

// findDisplayed locates a displayed artwork whose name contains value or
// vice versa, case-insensitively. First match in display order wins.
func findDisplayed(displayed []catalog.Artwork, value string) (catalog.Artwork, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return catalog.Artwork{}, false
	}
	for _, a := range displayed {
		name := strings.ToLower(a.Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return a, true
		}
	}
	return catalog.Artwork{}, false
}
