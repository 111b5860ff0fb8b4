package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rates carries the checkout money rules. Shipping is free once the subtotal
// exceeds the threshold.
type Rates struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	ShippingFlatFee       decimal.Decimal
}

// Totals is always derived from its inputs and never stored independently.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives tax, shipping and the grand total from a subtotal.
func Compute(subtotal decimal.Decimal, rates Rates) Totals {
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	tax := subtotal.Mul(rates.TaxRate).Round(2)

	shipping := rates.ShippingFlatFee
	if subtotal.IsZero() || subtotal.GreaterThan(rates.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// FormatPrice renders a non-negative amount as a dollar string with grouped
// thousands, e.g. 1234.5 -> "$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	whole, frac := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, grouped.String(), frac)
}

// FormatDate renders a timestamp the way order history displays it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
