// Package dispatch is the inbound adapter between the presentation
// layer and the core: a closed set of action messages is translated
// into port calls, and the full derived view state is returned for
// rendering. The view never reaches into the core directly.
package dispatch

import (
	"log/slog"
	"sync"
	"time"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
	"github.com/niksmo/techmarket/pkg/debounce"
	"github.com/niksmo/techmarket/pkg/notice"
)

type Kind string

const (
	KindFilterCategory     Kind = "filter_category"
	KindSearch             Kind = "search"
	KindSort               Kind = "sort"
	KindToggleStock        Kind = "toggle_stock"
	KindToggleDiscount     Kind = "toggle_discount"
	KindToggleFastDelivery Kind = "toggle_fast_delivery"
	KindPriceBounds        Kind = "price_bounds"
	KindClearFilters       Kind = "clear_filters"
	KindViewMode           Kind = "view_mode"
	KindLoadMore           Kind = "load_more"
	KindAddToCart          Kind = "add_to_cart"
	KindRemoveFromCart     Kind = "remove_from_cart"
	KindUpdateQuantity     Kind = "update_quantity"
	KindBuyNow             Kind = "buy_now"
	KindToggleWishlist     Kind = "toggle_wishlist"
	KindRemoveFromWishlist Kind = "remove_from_wishlist"
	KindCheckout           Kind = "checkout"
)

// Action is one user gesture. Only the fields relevant to Kind are
// read; the rest stay zero.
type Action struct {
	Kind      Kind   `json:"kind"`
	Category  string `json:"category,omitempty"`
	Query     string `json:"query,omitempty"`
	SortKey   string `json:"sort_key,omitempty"`
	MinPrice  string `json:"min_price,omitempty"`
	MaxPrice  string `json:"max_price,omitempty"`
	ViewMode  string `json:"view_mode,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Delta     int    `json:"delta,omitempty"`
	Delivery  string `json:"delivery,omitempty"`
}

// Dispatcher serializes every core mutation behind one mutex: the
// deferred search callback fires on a timer goroutine, and the core
// expects the single-event-loop discipline of a browser.
type Dispatcher struct {
	mu       sync.Mutex
	catalog  port.CatalogViewer
	cart     port.CartOperator
	wishlist port.WishlistOperator
	icons    domain.CategoryIndex
	notices  *notice.Center
	search   *debounce.Debouncer
}

func New(
	catalog port.CatalogViewer,
	cart port.CartOperator,
	wishlist port.WishlistOperator,
	icons domain.CategoryIndex,
	notices *notice.Center,
	searchQuiet time.Duration,
) *Dispatcher {
	return &Dispatcher{
		catalog:  catalog,
		cart:     cart,
		wishlist: wishlist,
		icons:    icons,
		notices:  notices,
		search:   debounce.New(searchQuiet),
	}
}

// Dispatch applies one action and returns the view state to render.
// Rejected operations surface as notifications, never as failures:
// the storefront has no fatal user errors.
func (d *Dispatcher) Dispatch(a Action) View {
	const op = "Dispatcher.Dispatch"
	log := slog.With("op", op, "kind", a.Kind)

	d.mu.Lock()
	defer d.mu.Unlock()

	var receipt *ReceiptView

	switch a.Kind {
	case KindFilterCategory:
		d.catalog.FilterByCategory(a.Category)
	case KindSearch:
		// Keystrokes arrive faster than re-filtering is worth;
		// only the query after the quiet period is applied. The
		// callback runs on the timer goroutine and must take the
		// dispatcher lock before touching the catalog.
		q := a.Query
		d.search.Trigger(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.catalog.Search(q)
		})
	case KindSort:
		d.catalog.SortBy(domain.ParseSortKey(a.SortKey))
	case KindToggleStock:
		d.catalog.ToggleStockOnly()
	case KindToggleDiscount:
		d.catalog.ToggleDiscountOnly()
	case KindToggleFastDelivery:
		d.catalog.ToggleFastDeliveryOnly()
	case KindPriceBounds:
		d.catalog.SetPriceBounds(a.MinPrice, a.MaxPrice)
	case KindClearFilters:
		d.catalog.ClearFilters()
	case KindViewMode:
		d.catalog.SetViewMode(domain.ViewMode(a.ViewMode))
	case KindLoadMore:
		d.catalog.LoadMore()
	case KindAddToCart:
		if err := d.cart.Add(a.ProductID); err != nil {
			log.Warn("add to cart rejected", "productID", a.ProductID, "err", err)
		}
	case KindRemoveFromCart:
		d.cart.Remove(a.ProductID)
	case KindUpdateQuantity:
		d.cart.UpdateQuantity(a.ProductID, a.Delta)
	case KindBuyNow:
		if err := d.cart.BuyNow(a.ProductID); err != nil {
			log.Warn("buy now rejected", "productID", a.ProductID, "err", err)
		}
	case KindToggleWishlist:
		if _, err := d.wishlist.Toggle(a.ProductID); err != nil {
			log.Warn("wishlist toggle rejected", "productID", a.ProductID, "err", err)
		}
	case KindRemoveFromWishlist:
		d.wishlist.Remove(a.ProductID)
	case KindCheckout:
		r, err := d.cart.Checkout(parseDelivery(a.Delivery))
		if err != nil {
			log.Warn("checkout rejected", "err", err)
			break
		}
		receipt = &ReceiptView{
			OrderID:   r.OrderID,
			ItemCount: r.ItemCount,
			Subtotal:  r.Subtotal,
			Savings:   r.Savings,
			Surcharge: r.Surcharge,
			Total:     r.Total,
			Delivery:  string(r.Delivery),
		}
	default:
		log.Warn("unknown action")
	}

	v := d.view()
	v.Receipt = receipt
	return v
}

// FlushSearch applies a still-pending search query immediately
// (the Enter key of the search box). The pending callback acquires
// the dispatcher lock itself, so it must run before the lock is
// taken here.
func (d *Dispatcher) FlushSearch() View {
	d.search.Flush()

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view()
}

func parseDelivery(s string) domain.DeliveryMode {
	if domain.DeliveryMode(s) == domain.DeliveryExpress {
		return domain.DeliveryExpress
	}
	return domain.DeliveryStandard
}

func (d *Dispatcher) view() View {
	shown, total := d.catalog.Counts()
	lo, hi, _ := d.catalog.PriceRange()

	v := View{
		Products:  d.productViews(),
		Shown:     shown,
		Total:     total,
		Exhausted: d.catalog.Exhausted(),
		MinPrice:  lo,
		MaxPrice:  hi,
		ViewMode:  string(d.catalog.ViewMode()),
		Cart:      d.cartView(),
		Wishlist:  d.wishlistViews(),
	}

	if m, ok := d.notices.Current(); ok {
		v.Notice = &NoticeView{Text: m.Text, Level: string(m.Level)}
	}
	return v
}

func (d *Dispatcher) productViews() []ProductView {
	ps := d.catalog.Visible()
	views := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		views = append(views, ProductView{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Category:       p.Category,
			CategoryIcon:   d.icons.Icon(p.Category),
			Price:          p.Price,
			DiscountPrice:  p.DiscountPrice,
			EffectivePrice: p.EffectivePrice(),
			InStock:        p.InStock,
			IsNew:          p.IsNew,
			FastDelivery:   p.FastDelivery,
			Rating:         p.Rating,
			Reviews:        p.Reviews,
			Specs:          p.Specs,
			InWishlist:     d.wishlist.Contains(p.ID),
		})
	}
	return views
}

func (d *Dispatcher) cartView() CartView {
	lines := d.cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			ProductID:     l.ProductID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			OriginalPrice: l.OriginalPrice,
			Quantity:      l.Quantity,
			CategoryIcon:  l.CategoryIcon,
			LineTotal:     l.UnitPrice * int64(l.Quantity),
			Savings:       l.Savings(),
		})
	}
	return CartView{
		Lines:    views,
		Count:    d.cart.Count(),
		Subtotal: d.cart.Total(),
		Savings:  d.cart.Savings(),
	}
}

func (d *Dispatcher) wishlistViews() []WishlistEntryView {
	entries := d.wishlist.Entries()
	views := make([]WishlistEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, WishlistEntryView{
			ProductID:    e.ProductID,
			Name:         e.Name,
			Price:        e.Price,
			CategoryIcon: e.CategoryIcon,
		})
	}
	return views
}
