package catalog

import (
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/google/uuid"
)

func price(v float64) *float64 { return &v }

// SeedProducts builds the catalog the storefront opens with. Ids are
// assigned at process start; entries are ordered newest listing first to
// match the store's prepend discipline.
func SeedProducts() []models.Product {
	base := time.Now().UTC()
	seed := []struct {
		name          string
		brand         string
		price         float64
		originalPrice *float64
		category      string
		image         string
		isNew         bool
		isSale        bool
	}{
		{"Lilac Satin Slip Dress", "Violet Essentials", 1299, nil, "Dresses", "https://images.violetessentials.shop/products/lilac-satin-slip-dress.jpg", true, false},
		{"Oversized Wool Coat", "Mira Atelier", 3450, nil, "Outerwear", "https://images.violetessentials.shop/products/oversized-wool-coat.jpg", true, false},
		{"Ribbed Knit Crop Top", "Violet Essentials", 449, price(599), "Tops", "https://images.violetessentials.shop/products/ribbed-knit-crop-top.jpg", false, true},
		{"High-Waist Tailored Trousers", "Atelier Noir", 899, nil, "Bottoms", "https://images.violetessentials.shop/products/high-waist-tailored-trousers.jpg", false, false},
		{"Chunky Leather Ankle Boots", "Sol & Stone", 2199, price(2799), "Shoes", "https://images.violetessentials.shop/products/chunky-leather-ankle-boots.jpg", false, true},
		{"Pleated Midi Skirt", "Mira Atelier", 749, nil, "Bottoms", "https://images.violetessentials.shop/products/pleated-midi-skirt.jpg", true, false},
		{"Silk Twill Scarf", "Violet Essentials", 349, nil, "Accessories", "https://images.violetessentials.shop/products/silk-twill-scarf.jpg", false, false},
		{"Linen Wrap Dress", "Sol & Stone", 1050, price(1400), "Dresses", "https://images.violetessentials.shop/products/linen-wrap-dress.jpg", false, true},
		{"Cropped Denim Jacket", "Atelier Noir", 1199, nil, "Outerwear", "https://images.violetessentials.shop/products/cropped-denim-jacket.jpg", false, false},
		{"Woven Leather Tote", "Mira Atelier", 1899, nil, "Accessories", "https://images.violetessentials.shop/products/woven-leather-tote.jpg", true, false},
	}

	products := make([]models.Product, 0, len(seed))
	for i, s := range seed {
		products = append(products, models.Product{
			ID:            uuid.Must(uuid.NewV7()),
			Name:          s.name,
			Brand:         s.brand,
			Price:         s.price,
			OriginalPrice: s.originalPrice,
			Category:      s.category,
			Image:         s.image,
			IsNew:         s.isNew,
			IsSale:        s.isSale,
			CreatedAt:     base.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return products
}
