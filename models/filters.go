package models

// Sort modes accepted by the storefront listing.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// MaxPriceCeiling is the upper bound of the price slider. Listings above it
// are accepted at intake but stay unreachable through the slider until its
// range widens.
const MaxPriceCeiling = 5000

// FilterState is the user-selected view criteria for the product listing.
type FilterState struct {
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	Sort       string   `json:"sort"`
}

// DefaultFilterState returns the state the storefront opens with and the
// state an explicit "clear all filters" action resets to.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		MinPrice:   0,
		MaxPrice:   MaxPriceCeiling,
		Sort:       SortNewest,
	}
}

// Normalize clamps the price band into [0, MaxPriceCeiling] and falls back
// to the default sort for unknown modes. A ceiling of exactly 0 is valid:
// it excludes every priced product.
func (f *FilterState) Normalize() {
	if f.MinPrice < 0 {
		f.MinPrice = 0
	}
	if f.MaxPrice < 0 {
		f.MaxPrice = 0
	}
	if f.MaxPrice > MaxPriceCeiling {
		f.MaxPrice = MaxPriceCeiling
	}
	switch f.Sort {
	case SortNewest, SortPriceAsc, SortPriceDesc:
	default:
		f.Sort = SortNewest
	}
}
