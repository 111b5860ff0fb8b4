// Package cart holds the shopping cart slice: one line per product,
// quantity-merged on repeated adds, with money math on decimal values.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Item is a single cart line. A product appears at most once; adding it
// again bumps the quantity instead of creating a second line.
type Item struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// State is the cart slice. The zero value is an empty cart.
type State struct {
	Items []Item `json:"items"`
}

// TotalPrice sums every line's price times quantity.
func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemCount is the total unit count across all lines, not the line count.
func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// IsInCart reports whether the product has a line in the cart.
func (s State) IsInCart(productID int) bool {
	return s.indexOf(productID) >= 0
}

// QuantityOf returns the quantity for the product, or zero when absent.
func (s State) QuantityOf(productID int) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.Items[i].Quantity
	}
	return 0
}

func (s State) indexOf(productID int) int {
	for i, it := range s.Items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

// Snapshot serializes the cart lines for the persistence gateway.
func (s State) Snapshot() ([]byte, error) {
	if s.Items == nil {
		return json.Marshal([]Item{})
	}
	return json.Marshal(s.Items)
}

// FromSnapshot rebuilds cart state from a persisted snapshot.
func FromSnapshot(data []byte) (State, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return State{}, err
	}
	return State{Items: items}, nil
}
