package enums

import "fmt"

// SortKey selects which product attribute a listing is ordered by.
type SortKey string

const (
	SortKeyPrice    SortKey = "price"
	SortKeyRating   SortKey = "rating"
	SortKeyNewest   SortKey = "newest"
	SortKeyFeatured SortKey = "featured"
)

var validSortKeys = []SortKey{
	SortKeyPrice,
	SortKeyRating,
	SortKeyNewest,
	SortKeyFeatured,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}

// SortOrder selects the listing direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// String implements fmt.Stringer.
func (o SortOrder) String() string {
	return string(o)
}

// IsValid reports whether the value is a known SortOrder.
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
