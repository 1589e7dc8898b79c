package dispatch_test

import (
	"testing"
	"time"

	"github.com/niksmo/techmarket/internal/adapter/dispatch"
	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/service"
	"github.com/niksmo/techmarket/pkg/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartRepo struct {
	lines []domain.CartLine
}

func (m *memCartRepo) Load() []domain.CartLine { return m.lines }

func (m *memCartRepo) Save(lines []domain.CartLine) error {
	m.lines = lines
	return nil
}

type memWishlistRepo struct {
	entries []domain.WishlistEntry
}

func (m *memWishlistRepo) Load() []domain.WishlistEntry { return m.entries }

func (m *memWishlistRepo) Save(entries []domain.WishlistEntry) error {
	m.entries = entries
	return nil
}

func storefrontProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "iPhone 15 Pro", Category: "smartphones",
			Price: 99990, InStock: true, Popular: true,
			Rating: 4.8, Reviews: 512,
		},
		{
			ID: 2, Name: "Samsung Galaxy S24", Category: "smartphones",
			Price: 79990, DiscountPrice: 74990, InStock: true, Popular: true,
			Rating: 4.7, Reviews: 431,
		},
		{
			ID: 3, Name: "MacBook Air M3", Category: "laptops",
			Price: 129990, InStock: true, Rating: 4.9, Reviews: 287,
		},
		{
			ID: 4, Name: "Sony WH-1000XM5", Category: "headphones",
			Price: 29990, InStock: false, Rating: 4.8, Reviews: 1054,
		},
	}
}

func newTestDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	return newTestDispatcherQuiet(t, 100*time.Millisecond)
}

func newTestDispatcherQuiet(
	t *testing.T, searchQuiet time.Duration,
) *dispatch.Dispatcher {
	t.Helper()

	products := storefrontProducts()
	icons := domain.NewCategoryIndex([]domain.Category{
		{ID: "smartphones", Icon: "📱"},
		{ID: "laptops", Icon: "💻"},
		{ID: "headphones", Icon: "🎧"},
	})
	notices := notice.New(time.Minute)
	stats := &domain.OrderStats{}

	catalogSvc := service.NewCatalog(products, 2, "ru")
	cartSvc := service.NewCart(
		products, icons, &memCartRepo{}, notices, stats, 500,
	)
	wishlistSvc := service.NewWishlist(
		products, icons, &memWishlistRepo{}, notices,
	)

	return dispatch.New(
		catalogSvc, cartSvc, wishlistSvc, icons, notices, searchQuiet,
	)
}

func TestDispatchCatalogActions(t *testing.T) {
	t.Run("FilterCategory", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindFilterCategory, Category: "laptops",
		})

		require.Len(t, v.Products, 1)
		assert.Equal(t, int64(3), v.Products[0].ID)
		assert.Equal(t, "💻", v.Products[0].CategoryIcon)
		assert.Equal(t, 1, v.Total)
		assert.True(t, v.Exhausted)
	})

	t.Run("LoadMoreAndExhausted", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{Kind: dispatch.KindClearFilters})
		assert.Equal(t, 2, v.Shown)
		assert.Equal(t, 4, v.Total)
		assert.False(t, v.Exhausted)

		v = d.Dispatch(dispatch.Action{Kind: dispatch.KindLoadMore})
		assert.Equal(t, 4, v.Shown)
		assert.True(t, v.Exhausted)
	})

	t.Run("PriceBoundsAndSort", func(t *testing.T) {
		d := newTestDispatcher(t)
		d.Dispatch(dispatch.Action{
			Kind: dispatch.KindPriceBounds, MinPrice: "50000", MaxPrice: "100000",
		})
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindSort, SortKey: "price_asc",
		})

		require.Len(t, v.Products, 2)
		assert.Equal(t, int64(2), v.Products[0].ID)
		assert.Equal(t, int64(74990), v.Products[0].EffectivePrice)
		assert.Equal(t, int64(1), v.Products[1].ID)
	})

	t.Run("PriceRangePlaceholders", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{Kind: dispatch.KindClearFilters})
		assert.Equal(t, int64(29990), v.MinPrice)
		assert.Equal(t, int64(129990), v.MaxPrice)
	})

	t.Run("ViewMode", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindViewMode, ViewMode: "list",
		})
		assert.Equal(t, "list", v.ViewMode)
	})

	t.Run("UnknownKindIsNoOp", func(t *testing.T) {
		d := newTestDispatcher(t)
		assert.NotPanics(t, func() {
			d.Dispatch(dispatch.Action{Kind: "selfdestruct"})
		})
	})
}

func TestDispatchSearchIsDebounced(t *testing.T) {
	d := newTestDispatcher(t)

	v := d.Dispatch(dispatch.Action{Kind: dispatch.KindSearch, Query: "mac"})
	assert.Equal(t, 4, v.Total, "query must not apply before the quiet period")

	// a newer keystroke cancels the pending one
	d.Dispatch(dispatch.Action{Kind: dispatch.KindSearch, Query: "sony"})

	v = d.FlushSearch()
	assert.Equal(t, 1, v.Total)
	require.Len(t, v.Products, 1)
	assert.Equal(t, int64(4), v.Products[0].ID)
}

func TestDispatchSerializesDeferredSearch(t *testing.T) {
	// The deferred search callback fires on a timer goroutine. It
	// must never interleave with an action being dispatched: the
	// quiet period here is short enough that callbacks land right
	// in the middle of the action stream, which the race detector
	// flags if the dispatcher stops serializing core access.
	d := newTestDispatcherQuiet(t, 2*time.Millisecond)

	queries := []string{"mac", "sony", "iphone", ""}
	for i := 0; i < 200; i++ {
		d.Dispatch(dispatch.Action{
			Kind: dispatch.KindSearch, Query: queries[i%len(queries)],
		})
		d.Dispatch(dispatch.Action{
			Kind: dispatch.KindSort, SortKey: "price_asc",
		})
		d.Dispatch(dispatch.Action{Kind: dispatch.KindLoadMore})
		if i%20 == 0 {
			time.Sleep(3 * time.Millisecond)
		}
	}

	v := d.FlushSearch()
	assert.LessOrEqual(t, v.Shown, v.Total)
	assert.Len(t, v.Products, v.Shown)
}

func TestDispatchCartActions(t *testing.T) {
	t.Run("AddAndNotice", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindAddToCart, ProductID: 1,
		})

		assert.Equal(t, 1, v.Cart.Count)
		assert.Equal(t, int64(99990), v.Cart.Subtotal)
		require.NotNil(t, v.Notice)
		assert.Equal(t, string(notice.LevelSuccess), v.Notice.Level)
	})

	t.Run("OutOfStockSurfacesErrorNotice", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindAddToCart, ProductID: 4,
		})

		assert.Zero(t, v.Cart.Count)
		require.NotNil(t, v.Notice)
		assert.Equal(t, string(notice.LevelError), v.Notice.Level)
	})

	t.Run("UpdateQuantityAndRemove", func(t *testing.T) {
		d := newTestDispatcher(t)
		d.Dispatch(dispatch.Action{Kind: dispatch.KindAddToCart, ProductID: 2})
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindUpdateQuantity, ProductID: 2, Delta: 2,
		})
		require.Len(t, v.Cart.Lines, 1)
		assert.Equal(t, 3, v.Cart.Lines[0].Quantity)
		assert.Equal(t, int64(3*74990), v.Cart.Subtotal)
		assert.Equal(t, int64(3*5000), v.Cart.Savings)

		v = d.Dispatch(dispatch.Action{
			Kind: dispatch.KindRemoveFromCart, ProductID: 2,
		})
		assert.Empty(t, v.Cart.Lines)
	})

	t.Run("BuyNowReplacesCart", func(t *testing.T) {
		d := newTestDispatcher(t)
		d.Dispatch(dispatch.Action{Kind: dispatch.KindAddToCart, ProductID: 1})
		v := d.Dispatch(dispatch.Action{Kind: dispatch.KindBuyNow, ProductID: 2})

		require.Len(t, v.Cart.Lines, 1)
		assert.Equal(t, int64(2), v.Cart.Lines[0].ProductID)
	})
}

func TestDispatchCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		d := newTestDispatcher(t)
		v := d.Dispatch(dispatch.Action{Kind: dispatch.KindCheckout})

		assert.Nil(t, v.Receipt)
		require.NotNil(t, v.Notice)
		assert.Equal(t, string(notice.LevelError), v.Notice.Level)
	})

	t.Run("ExpressCheckoutReturnsReceipt", func(t *testing.T) {
		d := newTestDispatcher(t)
		d.Dispatch(dispatch.Action{Kind: dispatch.KindAddToCart, ProductID: 2})
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindCheckout, Delivery: "express",
		})

		require.NotNil(t, v.Receipt)
		assert.NotEmpty(t, v.Receipt.OrderID)
		assert.Equal(t, 1, v.Receipt.ItemCount)
		assert.Equal(t, int64(74990), v.Receipt.Subtotal)
		assert.Equal(t, int64(500), v.Receipt.Surcharge)
		assert.Equal(t, int64(75490), v.Receipt.Total)
		assert.Equal(t, "express", v.Receipt.Delivery)
		assert.Empty(t, v.Cart.Lines)
	})

	t.Run("UnknownDeliveryFallsBackToStandard", func(t *testing.T) {
		d := newTestDispatcher(t)
		d.Dispatch(dispatch.Action{Kind: dispatch.KindAddToCart, ProductID: 1})
		v := d.Dispatch(dispatch.Action{
			Kind: dispatch.KindCheckout, Delivery: "teleport",
		})

		require.NotNil(t, v.Receipt)
		assert.Zero(t, v.Receipt.Surcharge)
		assert.Equal(t, "standard", v.Receipt.Delivery)
	})
}

func TestDispatchWishlistActions(t *testing.T) {
	d := newTestDispatcher(t)

	v := d.Dispatch(dispatch.Action{
		Kind: dispatch.KindToggleWishlist, ProductID: 1,
	})
	require.Len(t, v.Wishlist, 1)
	require.NotEmpty(t, v.Products)
	assert.True(t, v.Products[0].InWishlist)

	v = d.Dispatch(dispatch.Action{
		Kind: dispatch.KindToggleWishlist, ProductID: 1,
	})
	assert.Empty(t, v.Wishlist)
	assert.False(t, v.Products[0].InWishlist)

	d.Dispatch(dispatch.Action{Kind: dispatch.KindToggleWishlist, ProductID: 2})
	v = d.Dispatch(dispatch.Action{
		Kind: dispatch.KindRemoveFromWishlist, ProductID: 2,
	})
	assert.Empty(t, v.Wishlist)
}
