// Package orders holds the order history slice: placed orders newest
// first, with a forward-only status progression.
package orders

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
	"github.com/cartwheel-labs/storefront-core/pkg/types"
)

// LineItem is a product line frozen at order time. Unlike a cart line it
// carries the category, resolved when the order is built.
type LineItem struct {
	ProductID int             `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
}

// PaymentDetails records how an order was paid. Card numbers are never
// stored; only the last four digits survive.
type PaymentDetails struct {
	Method       enums.PaymentMethod `json:"method"`
	CardLastFour string              `json:"cardLastFour,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	UserID          int               `json:"userId"`
	Products        []LineItem        `json:"products"`
	Date            time.Time         `json:"date"`
	ShippingAddress types.Address     `json:"shippingAddress"`
	Payment         PaymentDetails    `json:"payment"`
	Status          enums.OrderStatus `json:"status"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Tax             decimal.Decimal   `json:"tax"`
	Shipping        decimal.Decimal   `json:"shipping"`
	Total           decimal.Decimal   `json:"total"`
}

// State is the order history slice, newest order first. The zero value
// is an empty history.
type State struct {
	Orders []Order `json:"orders"`
}

// ByID returns the order with the given id, or nil when absent.
func (s State) ByID(id string) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			o := s.Orders[i]
			return &o
		}
	}
	return nil
}

// ForUser returns the user's orders, preserving newest-first ordering.
func (s State) ForUser(userID int) []Order {
	var out []Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// Snapshot serializes the order history for the persistence gateway.
func (s State) Snapshot() ([]byte, error) {
	if s.Orders == nil {
		return json.Marshal([]Order{})
	}
	return json.Marshal(s.Orders)
}

// FromSnapshot rebuilds order state from a persisted snapshot.
func FromSnapshot(data []byte) (State, error) {
	var list []Order
	if err := json.Unmarshal(data, &list); err != nil {
		return State{}, err
	}
	return State{Orders: list}, nil
}
