package catalog

import (
	"sort"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
)

// ComputeView derives the ordered storefront view from a catalog snapshot
// and a filter state. Pure: the input slice is not modified and identical
// inputs always yield the same sequence.
//
// Membership is decided by the category set (empty set passes everything)
// and the inclusive price band; ordering by the sort mode. Price sorts are
// stable, so equal-priced products keep their catalog order. The default
// "newest" mode is a stable partition with is-new products first, not a
// price sort.
func ComputeView(products []models.Product, spec models.FilterState) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(spec.Categories) > 0 && !containsCategory(spec.Categories, p.Category) {
			continue
		}
		if p.Price < spec.MinPrice || p.Price > spec.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	switch spec.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].IsNew && !result[j].IsNew
		})
	}

	return result
}

func containsCategory(set []string, category string) bool {
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
