package models

import (
	"time"

	"github.com/google/uuid"
)

// Categories is the fixed set of storefront categories, in display order.
// The first entry is the default for listings submitted without one.
var Categories = []string{
	"Dresses",
	"Tops",
	"Bottoms",
	"Outerwear",
	"Shoes",
	"Accessories",
}

// ValidCategory reports whether name is one of the enumerated categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Product is a single catalog entry. Products are never mutated in place
// and never deleted; the catalog only grows.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	IsNew         bool      `json:"is_new"`
	IsSale        bool      `json:"is_sale"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListingRequest carries the user-supplied fields of a "list an item"
// submission. Price arrives as a string from the form and is parsed at
// intake; the image arrives as a multipart file (or an image_url field).
type ListingRequest struct {
	Name     string `form:"name" example:"Vintage Denim Jacket"`
	Brand    string `form:"brand" example:"Zara"`
	Price    string `form:"price" example:"899.99"`
	Category string `form:"category" example:"Outerwear"`
	ImageURL string `form:"image_url"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductListResult is the payload for the filtered product listing.
// Reset carries the default filter state so clients can offer a
// "clear all filters" action when the view comes back empty.
type ProductListResult struct {
	Products []Product    `json:"products"`
	Total    int          `json:"total"`
	Filters  FilterState  `json:"filters"`
	Reset    *FilterState `json:"reset,omitempty"`
}

// ProductFilters describes the filter surface available to the client.
type ProductFilters struct {
	Categories []FilterOption `json:"categories"`
	PriceRange PriceRange     `json:"price_range"`
	SortModes  []string       `json:"sort_modes"`
}

// FilterOption represents a single filter option with its product count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents min and max price across the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
