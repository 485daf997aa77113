package models

// CartItem is one line in the cart: a product snapshot plus a quantity.
// Lines are unique per (product id, selected color); adding a product
// that matches an existing line increments its quantity instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Matches reports whether this line is keyed by the given product id
// and color variant.
func (ci CartItem) Matches(productID, color string) bool {
	return ci.ID == productID && ci.SelectedColor == color
}
