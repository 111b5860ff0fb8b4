package filters

import (
	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
)

// SetCategory switches the category filter. Empty falls back to "all".
type SetCategory struct {
	Category string
}

func (SetCategory) ActionType() string { return "filters/setCategory" }

// SetPriceRange sets the inclusive [min, max] price window. A reversed
// window is normalized by swapping the bounds.
type SetPriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (SetPriceRange) ActionType() string { return "filters/setPriceRange" }

// SetRating sets the minimum rating. Values are clamped to [0, 5].
type SetRating struct {
	Rating float64
}

func (SetRating) ActionType() string { return "filters/setRating" }

// SetSearchQuery sets the free-text query.
type SetSearchQuery struct {
	Query string
}

func (SetSearchQuery) ActionType() string { return "filters/setSearchQuery" }

// SetSortBy switches the sort key. Invalid keys are ignored.
type SetSortBy struct {
	Key enums.SortKey
}

func (SetSortBy) ActionType() string { return "filters/setSortBy" }

// SetSortOrder switches the sort direction. Invalid orders are ignored.
type SetSortOrder struct {
	Order enums.SortOrder
}

func (SetSortOrder) ActionType() string { return "filters/setSortOrder" }

// SetViewMode switches grid/list display. Invalid modes are ignored.
type SetViewMode struct {
	Mode enums.ViewMode
}

func (SetViewMode) ActionType() string { return "filters/setViewMode" }

// Reset restores the default filters but keeps the view mode, which is
// a display preference rather than a filter.
type Reset struct{}

func (Reset) ActionType() string { return "filters/reset" }
