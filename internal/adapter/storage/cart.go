package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
)

const CartKey = "techmarket/cart"

var _ port.CartRepository = (*CartRepository)(nil)

// cartLine is the persisted layout, kept byte-compatible with the
// storefront's historical localStorage payload.
type cartLine struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice"`
	Quantity      int    `json:"quantity"`
	Image         string `json:"image"`
	Category      string `json:"category"`
}

type CartRepository struct {
	kv *KV
}

func NewCartRepository(kv *KV) CartRepository {
	return CartRepository{kv}
}

// Load reads the stored line list. Absent or corrupt data degrades
// to an empty cart: storage problems never reach the caller.
func (r CartRepository) Load() []domain.CartLine {
	const op = "CartRepository.Load"

	raw, ok := r.kv.Get(CartKey)
	if !ok {
		return nil
	}

	var vs []cartLine
	if err := json.Unmarshal(raw, &vs); err != nil {
		slog.Warn("corrupt cart data, starting empty", "op", op, "err", err)
		return nil
	}

	lines := make([]domain.CartLine, 0, len(vs))
	for _, v := range vs {
		lines = append(lines, domain.CartLine{
			ProductID:     v.ID,
			Name:          v.Name,
			UnitPrice:     v.Price,
			OriginalPrice: v.OriginalPrice,
			Quantity:      v.Quantity,
			CategoryID:    v.Category,
			CategoryIcon:  v.Image,
		})
	}
	return lines
}

func (r CartRepository) Save(lines []domain.CartLine) error {
	const op = "CartRepository.Save"

	vs := make([]cartLine, 0, len(lines))
	for _, l := range lines {
		vs = append(vs, cartLine{
			ID:            l.ProductID,
			Name:          l.Name,
			Price:         l.UnitPrice,
			OriginalPrice: l.OriginalPrice,
			Quantity:      l.Quantity,
			Image:         l.CategoryIcon,
			Category:      l.CategoryID,
		})
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return err
	}

	if err := r.kv.Set(CartKey, b); err != nil {
		return err
	}
	slog.Debug("cart persisted", "op", op, "nLines", len(vs))
	return nil
}
