package models

// Sizes offered in the quick-view modal.
var QuickViewSizes = []string{"XS", "S", "M", "L", "XL"}

// Quick-view session states. Closed sessions are pruned, so only the open
// and confirming states are ever visible to clients.
const (
	QuickViewOpen       = "open"
	QuickViewConfirming = "confirming"
)

// QuickViewSnapshot is the client-visible state of one quick-view session.
type QuickViewSnapshot struct {
	ID           string   `json:"id"`
	Product      Product  `json:"product"`
	Sizes        []string `json:"sizes"`
	SelectedSize string   `json:"selected_size,omitempty"`
	State        string   `json:"state"`
	CanAddToCart bool     `json:"can_add_to_cart"`
}

type QuickViewOpenRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuickViewSizeRequest struct {
	Size string `json:"size" binding:"required"`
}
