package catalog

import (
	"testing"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/google/uuid"
)

func TestStore_AddPrepends(t *testing.T) {
	store := NewStore([]models.Product{product("seed", 100, "Tops", false)})

	added := store.Add(models.Product{Name: "listing", Brand: "Zara", Price: 250, Category: "Shoes", IsNew: true})

	products := store.Products()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "listing" {
		t.Errorf("new listing must be first, got %q", products[0].Name)
	}
	if added.ID == uuid.Nil {
		t.Error("store must assign an id")
	}
	if added.CreatedAt.IsZero() {
		t.Error("store must stamp creation time")
	}
}

func TestStore_IDsAreUnique(t *testing.T) {
	store := NewStore(nil)
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		p := store.Add(models.Product{Name: "item", Brand: "b", Price: 1, Category: "Tops"})
		if seen[p.ID] {
			t.Fatalf("duplicate id %s on iteration %d", p.ID, i)
		}
		seen[p.ID] = true
	}
}

func TestStore_VersionIncrementsOnAdd(t *testing.T) {
	store := NewStore(nil)
	if store.Version() != 0 {
		t.Fatalf("fresh store version = %d, want 0", store.Version())
	}
	store.Add(models.Product{Name: "a", Brand: "b", Price: 1, Category: "Tops"})
	store.Add(models.Product{Name: "c", Brand: "d", Price: 2, Category: "Shoes"})
	if store.Version() != 2 {
		t.Errorf("version = %d, want 2", store.Version())
	}
}

func TestStore_ProductsReturnsSnapshot(t *testing.T) {
	store := NewStore([]models.Product{product("seed", 100, "Tops", false)})

	snapshot := store.Products()
	snapshot[0].Name = "mutated"

	if store.Products()[0].Name != "seed" {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestStore_Get(t *testing.T) {
	store := NewStore(nil)
	added := store.Add(models.Product{Name: "wanted", Brand: "b", Price: 10, Category: "Tops"})

	got, ok := store.Get(added.ID)
	if !ok || got.Name != "wanted" {
		t.Errorf("Get(%s) = %v, %v", added.ID, got.Name, ok)
	}
	if _, ok := store.Get(uuid.Must(uuid.NewV7())); ok {
		t.Error("Get of unknown id must report not found")
	}
}

func TestStore_PriceRange(t *testing.T) {
	store := NewStore([]models.Product{
		product("a", 350, "Tops", false),
		product("b", 120, "Shoes", false),
		product("c", 2100, "Outerwear", false),
	})
	r := store.PriceRange()
	if r.Min != 120 || r.Max != 2100 {
		t.Errorf("range = [%v, %v], want [120, 2100]", r.Min, r.Max)
	}

	empty := NewStore(nil)
	if r := empty.PriceRange(); r.Min != 0 || r.Max != 0 {
		t.Errorf("empty catalog range = [%v, %v], want zeroes", r.Min, r.Max)
	}
}

func TestStore_CategoryCounts(t *testing.T) {
	store := NewStore([]models.Product{
		product("a", 100, "Tops", false),
		product("b", 100, "Tops", false),
		product("c", 100, "Shoes", false),
	})
	counts := store.CategoryCounts()
	if counts["Tops"] != 2 || counts["Shoes"] != 1 || counts["Dresses"] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestSeedProducts_AreWellFormed(t *testing.T) {
	seed := SeedProducts()
	if len(seed) == 0 {
		t.Fatal("seed catalog is empty")
	}
	seen := make(map[uuid.UUID]bool)
	for _, p := range seed {
		if seen[p.ID] {
			t.Errorf("duplicate seed id %s", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 {
			t.Errorf("%s has negative price", p.Name)
		}
		if p.Price > models.MaxPriceCeiling {
			t.Errorf("%s is priced beyond the slider ceiling", p.Name)
		}
		if !models.ValidCategory(p.Category) {
			t.Errorf("%s has unknown category %q", p.Name, p.Category)
		}
		if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
			t.Errorf("%s original price below current price", p.Name)
		}
	}
}
