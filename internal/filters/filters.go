// Package filters holds the product listing controls: category, price
// window, minimum rating, search query, sort and view mode, plus the
// pipeline that applies them to a product list.
package filters

import (
	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "all"

// State is the filter slice.
type State struct {
	Category    string           `json:"category"`
	PriceMin    decimal.Decimal  `json:"priceMin"`
	PriceMax    decimal.Decimal  `json:"priceMax"`
	Rating      float64          `json:"rating"`
	SearchQuery string           `json:"searchQuery"`
	SortBy      enums.SortKey    `json:"sortBy"`
	SortOrder   enums.SortOrder  `json:"sortOrder"`
	ViewMode    enums.ViewMode   `json:"viewMode"`
}

// Default returns the out-of-the-box filter settings.
func Default() State {
	return State{
		Category:  CategoryAll,
		PriceMin:  decimal.Zero,
		PriceMax:  decimal.NewFromInt(1000),
		Rating:    0,
		SortBy:    enums.SortKeyPrice,
		SortOrder: enums.SortOrderAsc,
		ViewMode:  enums.ViewModeGrid,
	}
}
