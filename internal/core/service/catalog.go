package service

import (
	"slices"
	"strconv"
	"strings"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/port"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ port.CatalogViewer = (*Catalog)(nil)

// Catalog narrows the product list through the filter pipeline and
// exposes a cumulative page window over the result. It owns the
// filter state exclusively.
type Catalog struct {
	products []domain.Product
	state    domain.FilterState
	collator *collate.Collator
	filtered []domain.Product
}

func NewCatalog(
	products []domain.Product, pageSize int, locale string,
) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	c := &Catalog{
		products: products,
		state:    domain.NewFilterState(pageSize),
		collator: collate.New(tag),
	}
	c.apply()
	return c
}

func (c *Catalog) FilterByCategory(categoryID string) {
	c.state.Category = categoryID
	c.reapply()
}

func (c *Catalog) Search(query string) {
	c.state.SearchQuery = strings.ToLower(strings.TrimSpace(query))
	c.reapply()
}

func (c *Catalog) SortBy(key domain.SortKey) {
	c.state.Sort = key
	c.reapply()
}

func (c *Catalog) ToggleStockOnly() {
	c.state.OnlyInStock = !c.state.OnlyInStock
	c.reapply()
}

func (c *Catalog) ToggleDiscountOnly() {
	c.state.OnlyDiscount = !c.state.OnlyDiscount
	c.reapply()
}

func (c *Catalog) ToggleFastDeliveryOnly() {
	c.state.OnlyFastDelivery = !c.state.OnlyFastDelivery
	c.reapply()
}

// SetPriceBounds accepts the raw bound inputs as the view provides
// them. Empty or unparseable values deactivate the bound.
func (c *Catalog) SetPriceBounds(minRaw, maxRaw string) {
	c.state.MinPrice = parseBound(minRaw)
	c.state.MaxPrice = parseBound(maxRaw)
	c.reapply()
}

func parseBound(raw string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (c *Catalog) ClearFilters() {
	c.state.Reset()
	c.apply()
}

// SetViewMode records the presentation hint. It does not narrow the
// result, so the page window is kept.
func (c *Catalog) SetViewMode(mode domain.ViewMode) {
	c.state.View = mode
}

func (c *Catalog) ViewMode() domain.ViewMode {
	return c.state.View
}

// LoadMore grows the visible window by one page. At the end of the
// list it is a no-op.
func (c *Catalog) LoadMore() {
	if c.state.Page*c.state.PageSize < len(c.filtered) {
		c.state.Page++
	}
}

// Visible returns the cumulative page window over the filtered and
// sorted list. The slice is a copy: callers own it.
func (c *Catalog) Visible() []domain.Product {
	return slices.Clone(c.filtered[:c.windowLen()])
}

func (c *Catalog) Counts() (shown, total int) {
	return c.windowLen(), len(c.filtered)
}

func (c *Catalog) windowLen() int {
	return min(c.state.Page*c.state.PageSize, len(c.filtered))
}

func (c *Catalog) Exhausted() bool {
	return c.state.Page*c.state.PageSize >= len(c.filtered)
}

// PriceRange reports the effective-price span of the filtered set,
// used by the view as bound-input placeholders.
func (c *Catalog) PriceRange() (lo, hi int64, ok bool) {
	if len(c.filtered) == 0 {
		return 0, 0, false
	}
	lo, hi = c.filtered[0].EffectivePrice(), c.filtered[0].EffectivePrice()
	for _, p := range c.filtered[1:] {
		lo = min(lo, p.EffectivePrice())
		hi = max(hi, p.EffectivePrice())
	}
	return lo, hi, true
}

// reapply recomputes the filtered list from scratch and returns to
// the first page: the old window is meaningless for a new condition.
func (c *Catalog) reapply() {
	c.state.Page = 1
	c.apply()
}

func (c *Catalog) apply() {
	filtered := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if c.matches(p) {
			filtered = append(filtered, p)
		}
	}
	c.sort(filtered)
	c.filtered = filtered
}

// matches is the conjunction of every active predicate.
func (c *Catalog) matches(p domain.Product) bool {
	s := &c.state
	if s.Category != domain.AllCategories && p.Category != s.Category {
		return false
	}
	if s.SearchQuery != "" && !searchHit(p, s.SearchQuery) {
		return false
	}
	if s.OnlyInStock && !p.InStock {
		return false
	}
	if s.OnlyDiscount && !p.HasDiscount() {
		return false
	}
	if s.OnlyFastDelivery && !p.FastDelivery {
		return false
	}
	if s.MinPrice != nil && p.EffectivePrice() < *s.MinPrice {
		return false
	}
	if s.MaxPrice != nil && p.EffectivePrice() > *s.MaxPrice {
		return false
	}
	return true
}

func searchHit(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, spec := range p.Specs {
		if strings.Contains(strings.ToLower(spec), query) {
			return true
		}
	}
	return false
}

// sort orders ps in place. The sort is stable: equal-key products
// keep their catalog order.
func (c *Catalog) sort(ps []domain.Product) {
	switch c.state.Sort {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmpInt64(a.EffectivePrice(), b.EffectivePrice())
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmpInt64(b.EffectivePrice(), a.EffectivePrice())
		})
	case domain.SortName:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return c.collator.CompareString(a.Name, b.Name)
		})
	case domain.SortRating:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	case domain.SortPopular:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			if a.Popular != b.Popular {
				if a.Popular {
					return -1
				}
				return 1
			}
			return b.Reviews - a.Reviews
		})
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
