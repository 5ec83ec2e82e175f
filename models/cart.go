package models

// CartLine is one entry of a user's cart: a product reference paired with
// the number of units reserved from that product's stock.
//
// A cart holds at most one line per distinct product; adding a product that
// is already present increments its line instead of duplicating it. A line
// whose quantity reaches zero is removed, so Quantity is always >= 1.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CartEntry is the client-facing projection of a cart line joined with its
// live product record. Internal identifiers and the product's remaining
// stock are deliberately omitted.
type CartEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`

	// Quantity is the number of units of this product in the cart,
	// not the product's stock level.
	Quantity int64 `json:"quantity"`
}
