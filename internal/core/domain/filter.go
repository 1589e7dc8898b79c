package domain

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

// ParseSortKey maps raw view input to a known key,
// falling back to [SortDefault].
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortName, SortRating, SortPopular:
		return k
	default:
		return SortDefault
	}
}

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// FilterState holds the whole catalog view condition.
// It is owned exclusively by the catalog service.
type FilterState struct {
	Category         string
	SearchQuery      string
	Sort             SortKey
	OnlyInStock      bool
	OnlyDiscount     bool
	OnlyFastDelivery bool
	MinPrice         *int64
	MaxPrice         *int64
	Page             int
	PageSize         int
	View             ViewMode
}

func NewFilterState(pageSize int) FilterState {
	return FilterState{
		Category: AllCategories,
		Sort:     SortDefault,
		Page:     1,
		PageSize: pageSize,
		View:     ViewGrid,
	}
}

// Reset clears every filter condition except the page size
// and view mode, returning to the first page.
func (s *FilterState) Reset() {
	*s = FilterState{
		Category: AllCategories,
		Sort:     SortDefault,
		Page:     1,
		PageSize: s.PageSize,
		View:     s.View,
	}
}
