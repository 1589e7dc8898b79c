package service

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
)

var _ port.WishlistOperator = (*Wishlist)(nil)

// Wishlist is a toggle-set of products with display data
// snapshotted at add-time.
type Wishlist struct {
	products map[int64]domain.Product
	icons    domain.CategoryIndex
	repo     port.WishlistRepository
	notifier port.Notifier
	entries  []domain.WishlistEntry
}

func NewWishlist(
	products []domain.Product,
	icons domain.CategoryIndex,
	repo port.WishlistRepository,
	notifier port.Notifier,
) *Wishlist {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Wishlist{
		products: byID,
		icons:    icons,
		repo:     repo,
		notifier: notifier,
		entries:  repo.Load(),
	}
}

// Toggle adds the product when absent and removes it when present,
// reporting the resulting membership.
func (w *Wishlist) Toggle(productID int64) (present bool, err error) {
	const op = "Wishlist.Toggle"

	p, ok := w.products[productID]
	if !ok {
		return false, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}

	if w.Contains(productID) {
		w.Remove(productID)
		w.notifier.Success(fmt.Sprintf("❌ %q удален из избранного", p.Name))
		return false, nil
	}

	w.entries = append(w.entries, domain.WishlistEntry{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.EffectivePrice(),
		CategoryID:   p.Category,
		CategoryIcon: w.icons.Icon(p.Category),
	})
	w.persist()
	w.notifier.Success(fmt.Sprintf("❤️ %q добавлен в избранное", p.Name))
	return true, nil
}

func (w *Wishlist) Remove(productID int64) {
	i := slices.IndexFunc(w.entries, func(e domain.WishlistEntry) bool {
		return e.ProductID == productID
	})
	if i < 0 {
		return
	}
	w.entries = slices.Delete(w.entries, i, i+1)
	w.persist()
}

func (w *Wishlist) Contains(productID int64) bool {
	return slices.ContainsFunc(w.entries, func(e domain.WishlistEntry) bool {
		return e.ProductID == productID
	})
}

func (w *Wishlist) Entries() []domain.WishlistEntry {
	return slices.Clone(w.entries)
}

func (w *Wishlist) persist() {
	const op = "Wishlist.persist"

	if err := w.repo.Save(w.entries); err != nil {
		slog.Error("failed to save wishlist", "op", op, "err", err)
	}
}
