// Package checkout drives the multi-step checkout: a validated form
// advancing through shipping, payment and review, ending in a placed
// order.
package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cartwheel-labs/storefront-core/pkg/enums"
	"github.com/cartwheel-labs/storefront-core/pkg/types"
)

// Form is everything the shopper types during checkout. Validation is
// step-scoped: only the fields belonging to the current step gate
// advancement, and card fields are skipped entirely for non-card
// payment methods.
type Form struct {
	FullName string `json:"fullName" validate:"required,person_name"`
	Address  string `json:"address" validate:"required,min=5"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state"`
	Pincode  string `json:"pincode" validate:"required,postal_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone" validate:"required,phone"`

	PaymentMethod enums.PaymentMethod `json:"paymentMethod" validate:"required"`
	CardNumber    string              `json:"cardNumber" validate:"omitempty,luhn"`
	NameOnCard    string              `json:"nameOnCard" validate:"omitempty,person_name"`
	ExpiryDate    string              `json:"expiryDate" validate:"omitempty,card_expiry"`
	CVV           string              `json:"cvv" validate:"omitempty,cvv"`
}

// ShippingAddress builds the order's shipping address from the form.
func (f Form) ShippingAddress() types.Address {
	return types.Address{
		FullName: strings.TrimSpace(f.FullName),
		Address:  strings.TrimSpace(f.Address),
		City:     strings.TrimSpace(f.City),
		State:    strings.TrimSpace(f.State),
		Pincode:  strings.TrimSpace(f.Pincode),
		Country:  strings.TrimSpace(f.Country),
		Phone:    strings.TrimSpace(f.Phone),
	}
}

// Struct field names per step, as validator.StructPartial expects them.
var (
	shippingFields = []string{"FullName", "Address", "City", "Pincode", "Phone"}
	cardFields     = []string{"CardNumber", "NameOnCard", "ExpiryDate", "CVV"}
)

// paymentFields returns the payment step's field set for the chosen
// method.
func paymentFields(method enums.PaymentMethod) []string {
	fields := []string{"PaymentMethod"}
	if method.RequiresCardDetails() {
		fields = append(fields, cardFields...)
	}
	return fields
}

// validateFields runs the validator over a subset of the form and maps
// failures to per-field messages keyed by json field name.
func validateFields(v *validator.Validate, form Form, fields []string) map[string]string {
	// Card fields are tagged omitempty so partial validation can skip
	// them; enforce presence here when they are in scope.
	errs := make(map[string]string)
	for _, name := range fields {
		switch name {
		case "CardNumber":
			if strings.TrimSpace(form.CardNumber) == "" {
				errs["cardNumber"] = "card number is required"
			}
		case "NameOnCard":
			if strings.TrimSpace(form.NameOnCard) == "" {
				errs["nameOnCard"] = "name on card is required"
			}
		case "ExpiryDate":
			if strings.TrimSpace(form.ExpiryDate) == "" {
				errs["expiryDate"] = "expiry date is required"
			}
		case "CVV":
			if strings.TrimSpace(form.CVV) == "" {
				errs["cvv"] = "cvv is required"
			}
		case "PaymentMethod":
			if !form.PaymentMethod.IsValid() {
				errs["paymentMethod"] = "select a payment method"
			}
		}
	}

	err := v.StructPartial(form, fields...)
	if err != nil {
		var invalid validator.ValidationErrors
		if ok := asValidationErrors(err, &invalid); ok {
			for _, fe := range invalid {
				field := fe.Field()
				if _, exists := errs[field]; !exists {
					errs[field] = fieldMessage(fe)
				}
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if errs, ok := err.(validator.ValidationErrors); ok {
		*target = errs
		return true
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " is too short"
	case "person_name":
		return "enter a valid name"
	case "phone":
		return "enter a valid phone number"
	case "postal_code":
		return "enter a valid postal code"
	case "luhn":
		return "enter a valid card number"
	case "card_expiry":
		return "enter a valid expiry date (MM/YY)"
	case "cvv":
		return "enter a valid cvv"
	}
	return "invalid value"
}
