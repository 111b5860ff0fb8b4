package validate

import (
	"testing"
	"time"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"john@example.com", "j.doe+tag@mail.co.uk"}
	invalid := []string{"", "john", "john@", "@example.com", "john@site"}

	for _, v := range valid {
		if !ValidEmail(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if ValidEmail(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"1-570-236-7033", "+14155552671", "9876543210"}
	invalid := []string{"", "12345", "phone", "++123456789012345678"}

	for _, v := range valid {
		if !ValidPhone(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if ValidPhone(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestValidCardNumberLuhn(t *testing.T) {
	valid := []string{
		"4242424242424242",
		"4242 4242 4242 4242",
		"5555555555554444",
		"378282246310005", // 15-digit amex
	}
	invalid := []string{
		"",
		"4242424242424241", // checksum off by one
		"1234",             // too short
		"42424242424242424242", // too long
		"4242-4242-4242-424a",
	}

	for _, v := range valid {
		if !ValidCardNumber(v) {
			t.Fatalf("expected %q to pass luhn", v)
		}
	}
	for _, v := range invalid {
		if ValidCardNumber(v) {
			t.Fatalf("expected %q to fail luhn", v)
		}
	}
}

func TestValidExpiryAt(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	valid := []string{"06/25", "07/25", "01/26", "12/99"}
	invalid := []string{"", "05/25", "12/24", "13/26", "6/25", "06-25", "06/2025"}

	for _, v := range valid {
		if !ValidExpiryAt(v, now) {
			t.Fatalf("expected %q to be valid at %s", v, now)
		}
	}
	for _, v := range invalid {
		if ValidExpiryAt(v, now) {
			t.Fatalf("expected %q to be invalid at %s", v, now)
		}
	}
}

func TestValidPostalCode(t *testing.T) {
	tests := []struct {
		code    string
		country string
		valid   bool
	}{
		{"90210", "US", true},
		{"90210-1234", "US", true},
		{"9021", "US", false},
		{"110001", "IN", true},
		{"011001", "IN", false},
		{"K1A 0B1", "CA", true},
		{"SW1A 1AA", "GB", true},
		{"75001", "FR", true}, // fallback pattern
		{"", "US", false},
		{"!!", "FR", false},
	}

	for _, tt := range tests {
		if got := ValidPostalCode(tt.code, tt.country); got != tt.valid {
			t.Fatalf("ValidPostalCode(%q, %q) = %v, want %v", tt.code, tt.country, got, tt.valid)
		}
	}
}

func TestValidPersonName(t *testing.T) {
	valid := []string{"John Doe", "Anne-Marie O'Neil", "J. R. Hartley"}
	invalid := []string{"", "J", "1234", "John<script>"}

	for _, v := range valid {
		if !ValidPersonName(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if ValidPersonName(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestNewRegistersCustomTags(t *testing.T) {
	v := New()

	payload := struct {
		Card    string `json:"card" validate:"luhn"`
		Pincode string `json:"pincode" validate:"postal_code"`
		Country string `json:"country"`
	}{
		Card:    "4242424242424242",
		Pincode: "90210",
		Country: "US",
	}

	if err := v.Struct(payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	payload.Card = "1111"
	if err := v.Struct(payload); err == nil {
		t.Fatal("expected luhn failure")
	}
}
