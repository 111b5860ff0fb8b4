package types

import "strings"

// Address is the shipping destination captured at checkout. Fields are
// free-form strings validated at input time, not re-validated at storage time.
type Address struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// IsZero reports whether no field has been filled in.
func (a Address) IsZero() bool {
	return a == Address{}
}

// OneLine renders the address for logs and confirmation output.
func (a Address) OneLine() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.FullName, a.Address, a.City, a.State, a.Pincode, a.Country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, ", ")
}
