package domain

const AllCategories = "all"

// DefaultCategoryIcon is shown for products whose category
// is missing from the index.
const DefaultCategoryIcon = "📦"

type (
	Product struct {
		ID            int64
		Name          string
		Description   string
		Category      string
		Price         int64
		DiscountPrice int64
		InStock       bool
		IsNew         bool
		FastDelivery  bool
		Popular       bool
		Rating        float64
		Reviews       int
		Specs         []string
	}

	Category struct {
		ID   string
		Icon string
	}
)

// EffectivePrice is the discounted price when a discount is set,
// the base price otherwise.
func (p Product) EffectivePrice() int64 {
	if p.HasDiscount() {
		return p.DiscountPrice
	}
	return p.Price
}

func (p Product) HasDiscount() bool {
	return p.DiscountPrice > 0 && p.DiscountPrice < p.Price
}

// CategoryIndex maps category ids to display data.
type CategoryIndex map[string]Category

func NewCategoryIndex(cs []Category) CategoryIndex {
	idx := make(CategoryIndex, len(cs))
	for _, c := range cs {
		idx[c.ID] = c
	}
	return idx
}

// Icon resolves a category id to its display glyph,
// falling back to [DefaultCategoryIcon] for unknown ids.
func (idx CategoryIndex) Icon(categoryID string) string {
	if c, ok := idx[categoryID]; ok && c.Icon != "" {
		return c.Icon
	}
	return DefaultCategoryIcon
}
