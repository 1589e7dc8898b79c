package dispatch

type (
	ProductView struct {
		ID             int64    `json:"id"`
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		Category       string   `json:"category"`
		CategoryIcon   string   `json:"category_icon"`
		Price          int64    `json:"price"`
		DiscountPrice  int64    `json:"discount_price,omitempty"`
		EffectivePrice int64    `json:"effective_price"`
		InStock        bool     `json:"in_stock"`
		IsNew          bool     `json:"is_new"`
		FastDelivery   bool     `json:"fast_delivery"`
		Rating         float64  `json:"rating"`
		Reviews        int      `json:"reviews"`
		Specs          []string `json:"specs"`
		InWishlist     bool     `json:"in_wishlist"`
	}

	CartLineView struct {
		ProductID     int64  `json:"id"`
		Name          string `json:"name"`
		UnitPrice     int64  `json:"price"`
		OriginalPrice int64  `json:"original_price"`
		Quantity      int    `json:"quantity"`
		CategoryIcon  string `json:"image"`
		LineTotal     int64  `json:"line_total"`
		Savings       int64  `json:"savings"`
	}

	CartView struct {
		Lines    []CartLineView `json:"lines"`
		Count    int            `json:"count"`
		Subtotal int64          `json:"subtotal"`
		Savings  int64          `json:"savings"`
	}

	WishlistEntryView struct {
		ProductID    int64  `json:"id"`
		Name         string `json:"name"`
		Price        int64  `json:"price"`
		CategoryIcon string `json:"image"`
	}

	NoticeView struct {
		Text  string `json:"text"`
		Level string `json:"level"`
	}

	ReceiptView struct {
		OrderID   string `json:"order_id"`
		ItemCount int    `json:"item_count"`
		Subtotal  int64  `json:"subtotal"`
		Savings   int64  `json:"savings"`
		Surcharge int64  `json:"surcharge"`
		Total     int64  `json:"total"`
		Delivery  string `json:"delivery"`
	}

	// View is the full derived state handed back to the
	// presentation layer after every action.
	View struct {
		Products  []ProductView       `json:"products"`
		Shown     int                 `json:"shown"`
		Total     int                 `json:"total"`
		Exhausted bool                `json:"exhausted"`
		MinPrice  int64               `json:"min_price"`
		MaxPrice  int64               `json:"max_price"`
		ViewMode  string              `json:"view_mode"`
		Cart      CartView            `json:"cart"`
		Wishlist  []WishlistEntryView `json:"wishlist"`
		Notice    *NoticeView         `json:"notice,omitempty"`
		Receipt   *ReceiptView        `json:"receipt,omitempty"`
	}
)
