package port

import "github.com/niksmo/techmarket/internal/core/domain"

// Repositories persist the full collection after every mutation
// (write-through). Load never fails: absent or corrupt stored data
// degrades to an empty collection.
type (
	CartRepository interface {
		Load() []domain.CartLine
		Save([]domain.CartLine) error
	}

	WishlistRepository interface {
		Load() []domain.WishlistEntry
		Save([]domain.WishlistEntry) error
	}
)

// Notifier surfaces transient user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type CatalogViewer interface {
	FilterByCategory(categoryID string)
	Search(query string)
	SortBy(key domain.SortKey)
	ToggleStockOnly()
	ToggleDiscountOnly()
	ToggleFastDeliveryOnly()
	SetPriceBounds(minRaw, maxRaw string)
	ClearFilters()
	SetViewMode(mode domain.ViewMode)
	LoadMore()
	Visible() []domain.Product
	Counts() (shown, total int)
	Exhausted() bool
	PriceRange() (lo, hi int64, ok bool)
	ViewMode() domain.ViewMode
}

type CartOperator interface {
	Add(productID int64) error
	Remove(productID int64)
	UpdateQuantity(productID int64, delta int)
	BuyNow(productID int64) error
	Checkout(mode domain.DeliveryMode) (domain.Receipt, error)
	Lines() []domain.CartLine
	Count() int
	Total() int64
	Savings() int64
}

type WishlistOperator interface {
	Toggle(productID int64) (present bool, err error)
	Remove(productID int64)
	Contains(productID int64) bool
	Entries() []domain.WishlistEntry
}
