package catalog

import (
	"reflect"
	"testing"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/google/uuid"
)

func product(name string, price float64, category string, isNew bool) models.Product {
	return models.Product{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     name,
		Brand:    "Violet Essentials",
		Price:    price,
		Category: category,
		Image:    "https://images.violetessentials.shop/test/" + name + ".jpg",
		IsNew:    isNew,
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func defaultSpec() models.FilterState {
	return models.DefaultFilterState()
}

func TestComputeView_EmptyCatalog(t *testing.T) {
	result := ComputeView(nil, defaultSpec())
	if len(result) != 0 {
		t.Errorf("expected empty view, got %d products", len(result))
	}
}

func TestComputeView_NoCategoriesPassesAll(t *testing.T) {
	cat := []models.Product{
		product("P1", 100, "Dresses", false),
		product("P2", 50, "Shoes", true),
	}
	result := ComputeView(cat, defaultSpec())
	if len(result) != 2 {
		t.Fatalf("empty category set must pass everything, got %d of 2", len(result))
	}
}

func TestComputeView_CategoryFilter(t *testing.T) {
	cat := []models.Product{
		product("dress", 100, "Dresses", false),
		product("boots", 200, "Shoes", false),
		product("scarf", 50, "Accessories", false),
	}
	spec := defaultSpec()
	spec.Categories = []string{"Dresses", "Shoes"}

	result := ComputeView(cat, spec)
	if got := names(result); !reflect.DeepEqual(got, []string{"dress", "boots"}) {
		t.Errorf("expected [dress boots], got %v", got)
	}
}

func TestComputeView_PriceCeilingInclusive(t *testing.T) {
	cat := []models.Product{
		product("at-ceiling", 300, "Tops", false),
		product("above", 300.01, "Tops", false),
	}
	spec := defaultSpec()
	spec.MaxPrice = 300

	result := ComputeView(cat, spec)
	if len(result) != 1 || result[0].Name != "at-ceiling" {
		t.Errorf("a product priced exactly at the ceiling must pass, got %v", names(result))
	}
}

func TestComputeView_MinPriceInclusive(t *testing.T) {
	cat := []models.Product{
		product("cheap", 99.99, "Tops", false),
		product("at-floor", 100, "Tops", false),
		product("above", 150, "Tops", false),
	}
	spec := defaultSpec()
	spec.MinPrice = 100

	result := ComputeView(cat, spec)
	if got := names(result); !reflect.DeepEqual(got, []string{"at-floor", "above"}) {
		t.Errorf("expected [at-floor above], got %v", got)
	}
}

func TestComputeView_CeilingBelowEverything(t *testing.T) {
	cat := []models.Product{
		product("P1", 100, "Dresses", false),
		product("P2", 50, "Shoes", true),
	}
	spec := defaultSpec()
	spec.MaxPrice = 40

	result := ComputeView(cat, spec)
	if len(result) != 0 {
		t.Errorf("expected empty view, got %v", names(result))
	}
}

func TestComputeView_NewestPartition(t *testing.T) {
	cat := []models.Product{
		product("P1", 100, "Dresses", false),
		product("P2", 50, "Shoes", true),
	}
	result := ComputeView(cat, defaultSpec())
	if got := names(result); !reflect.DeepEqual(got, []string{"P2", "P1"}) {
		t.Errorf("is-new products must lead regardless of price, got %v", got)
	}
}

func TestComputeView_NewestKeepsRelativeOrderWithinPartitions(t *testing.T) {
	cat := []models.Product{
		product("old-a", 10, "Tops", false),
		product("new-a", 20, "Tops", true),
		product("old-b", 30, "Tops", false),
		product("new-b", 40, "Tops", true),
	}
	result := ComputeView(cat, defaultSpec())
	if got := names(result); !reflect.DeepEqual(got, []string{"new-a", "new-b", "old-a", "old-b"}) {
		t.Errorf("newest must be a stable partition, got %v", got)
	}
}

func TestComputeView_PriceAscending(t *testing.T) {
	cat := []models.Product{
		product("P1", 100, "Dresses", false),
		product("P2", 50, "Shoes", true),
	}
	spec := defaultSpec()
	spec.Sort = models.SortPriceAsc

	result := ComputeView(cat, spec)
	if got := names(result); !reflect.DeepEqual(got, []string{"P2", "P1"}) {
		t.Errorf("expected [P2 P1], got %v", got)
	}
}

func TestComputeView_PriceDescending(t *testing.T) {
	cat := []models.Product{
		product("P1", 100, "Dresses", false),
		product("P2", 50, "Shoes", true),
	}
	spec := defaultSpec()
	spec.Sort = models.SortPriceDesc

	result := ComputeView(cat, spec)
	if got := names(result); !reflect.DeepEqual(got, []string{"P1", "P2"}) {
		t.Errorf("expected [P1 P2], got %v", got)
	}
}

func TestComputeView_PriceSortStability(t *testing.T) {
	cat := []models.Product{
		product("first", 100, "Tops", false),
		product("second", 100, "Tops", false),
		product("third", 100, "Tops", false),
	}
	for _, mode := range []string{models.SortPriceAsc, models.SortPriceDesc} {
		spec := defaultSpec()
		spec.Sort = mode

		result := ComputeView(cat, spec)
		if got := names(result); !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
			t.Errorf("%s: equal prices must keep catalog order, got %v", mode, got)
		}
	}
}

func TestComputeView_SubsetAndPredicates(t *testing.T) {
	cat := []models.Product{
		product("a", 120, "Dresses", true),
		product("b", 480, "Shoes", false),
		product("c", 2100, "Outerwear", false),
		product("d", 90, "Accessories", true),
	}
	spec := models.FilterState{
		Categories: []string{"Dresses", "Shoes", "Outerwear"},
		MinPrice:   100,
		MaxPrice:   500,
		Sort:       models.SortPriceAsc,
	}

	result := ComputeView(cat, spec)
	ids := make(map[uuid.UUID]bool)
	for _, p := range cat {
		ids[p.ID] = true
	}
	for _, p := range result {
		if !ids[p.ID] {
			t.Errorf("view fabricated product %s", p.Name)
		}
		if p.Price < spec.MinPrice || p.Price > spec.MaxPrice {
			t.Errorf("product %s violates price band", p.Name)
		}
		if !models.ValidCategory(p.Category) {
			t.Errorf("product %s has invalid category", p.Name)
		}
	}
	if got := names(result); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestComputeView_PureAndIdempotent(t *testing.T) {
	cat := []models.Product{
		product("a", 300, "Tops", true),
		product("b", 100, "Shoes", false),
		product("c", 200, "Tops", false),
	}
	spec := defaultSpec()
	spec.Sort = models.SortPriceAsc

	before := names(cat)
	first := ComputeView(cat, spec)
	second := ComputeView(cat, spec)

	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("same inputs must yield the same sequence: %v vs %v", names(first), names(second))
	}
	if !reflect.DeepEqual(names(cat), before) {
		t.Errorf("input slice was reordered: %v", names(cat))
	}
}
