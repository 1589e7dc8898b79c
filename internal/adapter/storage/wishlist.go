package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
)

const WishlistKey = "techmarket/wishlist"

var _ port.WishlistRepository = (*WishlistRepository)(nil)

type wishlistEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type WishlistRepository struct {
	kv *KV
}

func NewWishlistRepository(kv *KV) WishlistRepository {
	return WishlistRepository{kv}
}

func (r WishlistRepository) Load() []domain.WishlistEntry {
	const op = "WishlistRepository.Load"

	raw, ok := r.kv.Get(WishlistKey)
	if !ok {
		return nil
	}

	var vs []wishlistEntry
	if err := json.Unmarshal(raw, &vs); err != nil {
		slog.Warn("corrupt wishlist data, starting empty", "op", op, "err", err)
		return nil
	}

	entries := make([]domain.WishlistEntry, 0, len(vs))
	for _, v := range vs {
		entries = append(entries, domain.WishlistEntry{
			ProductID:    v.ID,
			Name:         v.Name,
			Price:        v.Price,
			CategoryID:   v.Category,
			CategoryIcon: v.Image,
		})
	}
	return entries
}

func (r WishlistRepository) Save(entries []domain.WishlistEntry) error {
	vs := make([]wishlistEntry, 0, len(entries))
	for _, e := range entries {
		vs = append(vs, wishlistEntry{
			ID:       e.ProductID,
			Name:     e.Name,
			Price:    e.Price,
			Image:    e.CategoryIcon,
			Category: e.CategoryID,
		})
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return err
	}
	return r.kv.Set(WishlistKey, b)
}
