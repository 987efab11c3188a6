package catalog

import (
	"sync"
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/google/uuid"
)

// Store owns the authoritative in-memory product list. New listings are
// prepended so they surface first under the default view; nothing is ever
// mutated in place or deleted.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	version  uint64
}

// NewStore returns a store preloaded with the given seed products.
func NewStore(seed []models.Product) *Store {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &Store{products: products}
}

// Add assigns the product a store-owned identifier, stamps its creation
// time and prepends it to the catalog. Returns the stored product.
func (s *Store) Add(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	// UUID v7 is time-ordered, so ids stay collision-free even for rapid
	// successive listings within the same clock tick.
	p.ID = uuid.Must(uuid.NewV7())
	p.CreatedAt = time.Now().UTC()

	s.products = append([]models.Product{p}, s.products...)
	s.version++
	return p
}

// Products returns a snapshot copy of the catalog in insertion order
// (newest listing first). Callers own the returned slice.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id uuid.UUID) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Version increments on every Add. The stylist keys its cached catalog
// context on it, so derived text is rebuilt only when the catalog changes.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// PriceRange returns the min and max price across the catalog, zeroes for
// an empty catalog.
func (s *Store) PriceRange() models.PriceRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.products) == 0 {
		return models.PriceRange{}
	}
	r := models.PriceRange{Min: s.products[0].Price, Max: s.products[0].Price}
	for _, p := range s.products[1:] {
		if p.Price < r.Min {
			r.Min = p.Price
		}
		if p.Price > r.Max {
			r.Max = p.Price
		}
	}
	return r
}

// CategoryCounts returns the number of products per enumerated category.
func (s *Store) CategoryCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int, len(models.Categories))
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts
}
