package enums

// ViewMode is a display preference, not a filter; resetting filters leaves it
// untouched.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// String implements fmt.Stringer.
func (m ViewMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ViewMode.
func (m ViewMode) IsValid() bool {
	return m == ViewModeGrid || m == ViewModeList
}
