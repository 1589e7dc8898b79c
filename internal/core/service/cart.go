package service

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
)

var _ port.CartOperator = (*Cart)(nil)

// Cart is the line-item ledger. Prices are snapshotted at add-time
// and deliberately do not follow later catalog changes.
type Cart struct {
	products  map[int64]domain.Product
	icons     domain.CategoryIndex
	repo      port.CartRepository
	notifier  port.Notifier
	stats     *domain.OrderStats
	surcharge int64
	lines     []domain.CartLine
}

func NewCart(
	products []domain.Product,
	icons domain.CategoryIndex,
	repo port.CartRepository,
	notifier port.Notifier,
	stats *domain.OrderStats,
	expressSurcharge int64,
) *Cart {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Cart{
		products:  byID,
		icons:     icons,
		repo:      repo,
		notifier:  notifier,
		stats:     stats,
		surcharge: expressSurcharge,
		lines:     repo.Load(),
	}
}

// Add puts one unit of the product into the cart, merging into an
// existing line. Unknown and out-of-stock products leave the cart
// untouched.
func (c *Cart) Add(productID int64) error {
	const op = "Cart.Add"

	p, ok := c.products[productID]
	if !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}
	if !p.InStock {
		c.notifier.Error("❌ Этот товар временно отсутствует на складе")
		return fmt.Errorf("%s: %w", op, domain.ErrOutOfStock)
	}

	if i := c.lineIndex(productID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, domain.CartLine{
			ProductID:     p.ID,
			Name:          p.Name,
			UnitPrice:     p.EffectivePrice(),
			OriginalPrice: p.Price,
			Quantity:      1,
			CategoryID:    p.Category,
			CategoryIcon:  c.icons.Icon(p.Category),
		})
	}

	c.persist()
	c.notifier.Success(fmt.Sprintf("✅ %q добавлен в корзину", p.Name))
	return nil
}

func (c *Cart) Remove(productID int64) {
	if i := c.lineIndex(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
		c.persist()
	}
}

// UpdateQuantity shifts a line's quantity by delta. A resulting
// quantity of zero or below removes the line.
func (c *Cart) UpdateQuantity(productID int64, delta int) {
	i := c.lineIndex(productID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity += delta
	if c.lines[i].Quantity <= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
	c.persist()
}

// BuyNow is a destructive replace: it empties the whole cart before
// adding the product, discarding anything already queued. Callers
// must warn the user before dispatching it.
func (c *Cart) BuyNow(productID int64) error {
	c.lines = nil
	c.persist()
	return c.Add(productID)
}

func (c *Cart) Lines() []domain.CartLine {
	return slices.Clone(c.lines)
}

// Count is the total unit count over all lines (the cart badge).
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.UnitPrice * int64(l.Quantity)
	}
	return sum
}

func (c *Cart) Savings() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Savings()
	}
	return sum
}

// Checkout places the order: the express surcharge is added to the
// subtotal, order stats are recorded and the cart is emptied. An
// empty cart is rejected without any state change.
func (c *Cart) Checkout(mode domain.DeliveryMode) (domain.Receipt, error) {
	const op = "Cart.Checkout"

	if len(c.lines) == 0 {
		c.notifier.Error("❌ Корзина пуста! Добавьте товары перед оформлением заказа.")
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	var surcharge int64
	if mode == domain.DeliveryExpress {
		surcharge = c.surcharge
	}

	r := domain.Receipt{
		OrderID:   uuid.NewString(),
		ItemCount: c.Count(),
		Subtotal:  c.Total(),
		Savings:   c.Savings(),
		Surcharge: surcharge,
		Delivery:  mode,
	}
	r.Total = r.Subtotal + r.Surcharge

	c.stats.Record(r.Total)

	c.lines = nil
	c.persist()

	c.notifier.Success(fmt.Sprintf(
		"🎉 Заказ успешно оформлен! Товаров: %d шт. Итого: %d тенге.",
		r.ItemCount, r.Total,
	))
	return r, nil
}

func (c *Cart) lineIndex(productID int64) int {
	return slices.IndexFunc(c.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
}

// persist writes the full line list through to storage. A failed
// write is logged and swallowed: the session state stays usable.
func (c *Cart) persist() {
	const op = "Cart.persist"

	if err := c.repo.Save(c.lines); err != nil {
		slog.Error("failed to save cart", "op", op, "err", err)
	}
}
