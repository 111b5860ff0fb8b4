package filters

import (
	"sort"
	"strings"

	"github.com/cartwheel-labs/storefront-core/internal/catalog"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
)

// Apply runs the filter pipeline over a product list and returns the
// filtered, sorted result. The input slice is never mutated. Stages run
// in a fixed order: category, price window, minimum rating, search
// query, then sort.
func Apply(products []catalog.Product, s State) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))

	for _, p := range products {
		if s.Category != "" && s.Category != CategoryAll && p.Category != s.Category {
			continue
		}
		if p.Price.LessThan(s.PriceMin) || p.Price.GreaterThan(s.PriceMax) {
			continue
		}
		if p.Rating.Rate < s.Rating {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, s.SortBy, s.SortOrder)
	return out
}

func sortProducts(products []catalog.Product, key enums.SortKey, order enums.SortOrder) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	if order == enums.SortOrderDesc {
		inner := less
		less = func(a, b catalog.Product) bool { return inner(b, a) }
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

func lessFunc(key enums.SortKey) func(a, b catalog.Product) bool {
	switch key {
	case enums.SortKeyPrice:
		return func(a, b catalog.Product) bool { return a.Price.LessThan(b.Price) }
	case enums.SortKeyRating:
		return func(a, b catalog.Product) bool { return a.Rating.Rate < b.Rating.Rate }
	case enums.SortKeyNewest:
		// Catalog ids are assigned sequentially, so id order stands in
		// for recency.
		return func(a, b catalog.Product) bool { return a.ID < b.ID }
	case enums.SortKeyFeatured:
		// Review volume stands in for popularity.
		return func(a, b catalog.Product) bool { return a.Rating.Count < b.Rating.Count }
	}
	return nil
}
