package validate

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9][0-9\-\s]{8,14}$`)
	personNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z'\-\. ]{1,59}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

	postalPatterns = map[string]*regexp.Regexp{
		"US": regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`),
		"IN": regexp.MustCompile(`^[1-9][0-9]{5}$`),
		"CA": regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z] ?[0-9][A-Za-z][0-9]$`),
		"GB": regexp.MustCompile(`^[A-Za-z]{1,2}[0-9][A-Za-z0-9]? ?[0-9][A-Za-z]{2}$`),
	}
	postalFallback = regexp.MustCompile(`^[A-Za-z0-9\- ]{3,10}$`)
)

// ValidEmail reports whether the value looks like a deliverable address.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// ValidPhone accepts digits with optional leading + and internal separators.
func ValidPhone(value string) bool {
	return phonePattern.MatchString(strings.TrimSpace(value))
}

// ValidPersonName accepts letters with the punctuation real names carry.
func ValidPersonName(value string) bool {
	return personNamePattern.MatchString(strings.TrimSpace(value))
}

// ValidCVV accepts a 3 or 4 digit card verification value.
func ValidCVV(value string) bool {
	return cvvPattern.MatchString(strings.TrimSpace(value))
}

// ValidCardNumber strips spaces and runs the Luhn checksum over 13-19 digits.
func ValidCardNumber(value string) bool {
	digits := strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(value), " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry checks MM/YY form against the current month.
func ValidExpiry(value string) bool {
	return ValidExpiryAt(value, time.Now())
}

// ValidExpiryAt checks MM/YY form; a card expiring in the current month is
// still valid.
func ValidExpiryAt(value string, now time.Time) bool {
	match := expiryPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return false
	}
	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	year += 2000

	if year > now.Year() {
		return true
	}
	if year < now.Year() {
		return false
	}
	return time.Month(month) >= now.Month()
}

// ValidPostalCode matches country-specific patterns where known and a
// permissive alphanumeric fallback elsewhere.
func ValidPostalCode(value, country string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if pattern, ok := postalPatterns[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return pattern.MatchString(trimmed)
	}
	return postalFallback.MatchString(trimmed)
}

// New returns a validator configured with the storefront's custom tags and
// json field naming.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})

	mustRegister(v, "luhn", func(fl validator.FieldLevel) bool {
		return ValidCardNumber(fl.Field().String())
	})
	mustRegister(v, "card_expiry", func(fl validator.FieldLevel) bool {
		return ValidExpiry(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	mustRegister(v, "person_name", func(fl validator.FieldLevel) bool {
		return ValidPersonName(fl.Field().String())
	})
	mustRegister(v, "cvv", func(fl validator.FieldLevel) bool {
		return ValidCVV(fl.Field().String())
	})
	// postal_code reads the sibling Country field so the rule can vary by
	// destination.
	mustRegister(v, "postal_code", func(fl validator.FieldLevel) bool {
		country := ""
		if parent := fl.Parent(); parent.Kind() == reflect.Struct {
			if field := parent.FieldByName("Country"); field.IsValid() && field.Kind() == reflect.String {
				country = field.String()
			}
		}
		return ValidPostalCode(fl.Field().String(), country)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
