package filters

// Reduce applies filter actions. Unrecognized actions return the state
// unchanged.
func Reduce(s State, action any) State {
	switch a := action.(type) {
	case SetCategory:
		if a.Category == "" {
			s.Category = CategoryAll
		} else {
			s.Category = a.Category
		}
		return s

	case SetPriceRange:
		min, max := a.Min, a.Max
		if min.GreaterThan(max) {
			min, max = max, min
		}
		s.PriceMin = min
		s.PriceMax = max
		return s

	case SetRating:
		rating := a.Rating
		if rating < 0 {
			rating = 0
		}
		if rating > 5 {
			rating = 5
		}
		s.Rating = rating
		return s

	case SetSearchQuery:
		s.SearchQuery = a.Query
		return s

	case SetSortBy:
		if !a.Key.IsValid() {
			return s
		}
		s.SortBy = a.Key
		return s

	case SetSortOrder:
		if !a.Order.IsValid() {
			return s
		}
		s.SortOrder = a.Order
		return s

	case SetViewMode:
		if !a.Mode.IsValid() {
			return s
		}
		s.ViewMode = a.Mode
		return s

	case Reset:
		next := Default()
		next.ViewMode = s.ViewMode
		return next
	}
	return s
}
