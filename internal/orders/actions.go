package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
	"github.com/cartwheel-labs/storefront-core/pkg/types"
)

// CreateInput carries everything the caller knows about a new order.
// Identity, order number, date and initial status are filled in by
// NewCreate so the reducer stays a pure function.
type CreateInput struct {
	UserID          int
	Products        []LineItem
	ShippingAddress types.Address
	Payment         PaymentDetails
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
}

// Create prepends a fully-formed order to the history.
type Create struct {
	Order Order
}

func (Create) ActionType() string { return "orders/create" }

// NewCreate builds a Create action with a fresh UUID, a human-facing
// order number derived from the date, and status confirmed.
func NewCreate(input CreateInput, now time.Time) Create {
	id := uuid.NewString()
	return Create{Order: Order{
		ID:              id,
		OrderNumber:     orderNumber(id, now),
		UserID:          input.UserID,
		Products:        input.Products,
		Date:            now.UTC(),
		ShippingAddress: input.ShippingAddress,
		Payment:         input.Payment,
		Status:          enums.OrderStatusConfirmed,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		Shipping:        input.Shipping,
		Total:           input.Total,
	}}
}

func orderNumber(id string, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), short)
}

// UpdateStatus moves an order to a new status. Transitions that the
// status table forbids, and unknown order ids, leave the state
// unchanged.
type UpdateStatus struct {
	OrderID string
	Status  enums.OrderStatus
}

func (UpdateStatus) ActionType() string { return "orders/updateStatus" }

// Clear wipes the order history.
type Clear struct{}

func (Clear) ActionType() string { return "orders/clear" }
