package domain

type DeliveryMode string

const (
	DeliveryStandard DeliveryMode = "standard"
	DeliveryExpress  DeliveryMode = "express"
)

type (
	// CartLine aggregates the quantity of a single product.
	// UnitPrice and OriginalPrice are snapshots taken at add-time:
	// later catalog price changes never flow into an existing line.
	CartLine struct {
		ProductID     int64
		Name          string
		UnitPrice     int64
		OriginalPrice int64
		Quantity      int
		CategoryID    string
		CategoryIcon  string
	}

	WishlistEntry struct {
		ProductID    int64
		Name         string
		Price        int64
		CategoryID   string
		CategoryIcon string
	}

	// Receipt describes a successfully placed order.
	Receipt struct {
		OrderID   string
		ItemCount int
		Subtotal  int64
		Savings   int64
		Surcharge int64
		Total     int64
		Delivery  DeliveryMode
	}
)

// Savings is the amount saved on this line against the base price.
func (l CartLine) Savings() int64 {
	if l.OriginalPrice > l.UnitPrice {
		return (l.OriginalPrice - l.UnitPrice) * int64(l.Quantity)
	}
	return 0
}

// OrderStats counts successful checkouts for the lifetime of
// the process. It is injected, never reached through globals,
// and never persisted.
type OrderStats struct {
	TotalOrders  int64
	TotalRevenue int64
}

func (s *OrderStats) Record(total int64) {
	s.TotalOrders++
	s.TotalRevenue += total
}
