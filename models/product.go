package models

import "time"

// Category is the fixed classification of a catalog product.
type Category string

// The full set of product categories accepted by the catalog.
const (
	CategoryFood        Category = "Food"
	CategoryHousehold   Category = "Household"
	CategoryAccessories Category = "Accessories"
	CategoryGames       Category = "Games"
)

// Categories lists every valid Category value, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryHousehold,
	CategoryAccessories,
	CategoryGames,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a single catalog entry.
//
// Quantity is the remaining stock: it is decremented every time a unit is
// reserved into a user's cart and incremented back when the unit is removed.
// It never goes negative.
type Product struct {
	// ProductID is the server-assigned identifier of the product.
	ProductID int64 `json:"id"`

	// Name is the display name. Trimmed, 2–100 characters, required.
	Name string `json:"name"`

	// Description is optional free text, at most 500 characters.
	Description string `json:"description,omitempty"`

	// Price is the unit price. Non-negative, required.
	Price float64 `json:"price"`

	// Quantity is the remaining stock. Non-negative, defaults to 0.
	Quantity int64 `json:"quantity"`

	// Category is one of the enumerated product categories.
	Category Category `json:"category"`

	// CreatedAt is the creation timestamp assigned by the store.
	CreatedAt time.Time `json:"created_at"`
}

// ProductUpdate represents criteria for partially updating a single product.
// Only non-nil fields will be updated (partial update support).
type ProductUpdate struct {
	// Name replaces the display name. If nil, the field is not updated.
	Name *string `json:"name,omitempty"`

	// Description replaces the description. If nil, the field is not updated.
	Description *string `json:"description,omitempty"`

	// Price replaces the unit price. If nil, the field is not updated.
	Price *float64 `json:"price,omitempty"`

	// Quantity replaces the stock count. If nil, the field is not updated.
	Quantity *int64 `json:"quantity,omitempty"`

	// Category replaces the category. If nil, the field is not updated.
	Category *Category `json:"category,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Quantity == nil && u.Category == nil
}
