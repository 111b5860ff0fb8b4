package cart

import "github.com/shopspring/decimal"

// Product carries the fields the cart keeps from a catalog listing.
type Product struct {
	ID    int
	Title string
	Price decimal.Decimal
	Image string
}

// AddItem adds a product to the cart, merging quantities when the
// product already has a line. Quantities below one count as one.
type AddItem struct {
	Product  Product
	Quantity int
}

func (AddItem) ActionType() string { return "cart/addItem" }

// RemoveItem drops the product's line entirely, whatever its quantity.
type RemoveItem struct {
	ProductID int
}

func (RemoveItem) ActionType() string { return "cart/removeItem" }

// UpdateQuantity sets an exact quantity for an existing line. A quantity
// of zero or less removes the line. Unknown products are ignored.
type UpdateQuantity struct {
	ProductID int
	Quantity  int
}

func (UpdateQuantity) ActionType() string { return "cart/updateQuantity" }

// Clear empties the cart.
type Clear struct{}

func (Clear) ActionType() string { return "cart/clear" }
