package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names a checkout form field with its own rule set.
type Field string

const (
	FieldName    Field = "name"
	FieldAddress Field = "address"
	FieldCity    Field = "city"
	FieldZip     Field = "zip"
)

// FieldRule bounds a field's length and character class.
type FieldRule struct {
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
}

var fieldRules = map[Field]FieldRule{
	FieldName: {
		MinLength: 2,
		MaxLength: 50,
		Pattern:   regexp.MustCompile(`^[\p{L} '-]+$`),
	},
	FieldAddress: {
		MinLength: 5,
		MaxLength: 100,
		Pattern:   regexp.MustCompile(`^[[:print:]]+$`),
	},
	FieldCity: {
		MinLength: 2,
		MaxLength: 50,
		Pattern:   regexp.MustCompile(`^[\p{L} .'-]+$`),
	},
	FieldZip: {
		MinLength: 3,
		MaxLength: 10,
		Pattern:   regexp.MustCompile(`^[A-Za-z0-9 -]+$`),
	},
}

// ValidateField trims raw and checks it against the field's rule set.
// Check order is fixed: emptiness, then length, then pattern, so the
// returned reason code is deterministic and the cheapest check runs first.
// Returns the trimmed value on success.
func ValidateField(field Field, raw string) (string, error) {
	rule, ok := fieldRules[field]
	if !ok {
		return "", fmt.Errorf("no rule set for field %q", field)
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return "", NewFieldError(ErrCodeEmpty, field, fmt.Sprintf("%s is required", field))
	}
	// Length bounds count characters, not bytes; the name and city
	// patterns accept multi-byte letters.
	length := utf8.RuneCountInString(value)
	if length < rule.MinLength {
		return "", NewFieldError(ErrCodeTooShort, field,
			fmt.Sprintf("%s must be at least %d characters", field, rule.MinLength))
	}
	if length > rule.MaxLength {
		return "", NewFieldError(ErrCodeTooLong, field,
			fmt.Sprintf("%s must be at most %d characters", field, rule.MaxLength))
	}
	if !rule.Pattern.MatchString(value) {
		return "", NewFieldError(ErrCodePatternMismatch, field,
			fmt.Sprintf("%s contains invalid characters", field))
	}

	return value, nil
}

// ValidateCustomerInfo validates every rule-backed field in a fixed order,
// first failure wins. Email has no rule set; it is trimmed and carried
// through as submitted. Returns the normalized customer info.
func ValidateCustomerInfo(info CustomerInfo) (CustomerInfo, error) {
	name, err := ValidateField(FieldName, info.Name)
	if err != nil {
		return CustomerInfo{}, err
	}
	address, err := ValidateField(FieldAddress, info.Address)
	if err != nil {
		return CustomerInfo{}, err
	}
	city, err := ValidateField(FieldCity, info.City)
	if err != nil {
		return CustomerInfo{}, err
	}
	zip, err := ValidateField(FieldZip, info.Zip)
	if err != nil {
		return CustomerInfo{}, err
	}

	return CustomerInfo{
		Name:    name,
		Address: address,
		City:    city,
		Zip:     zip,
		Email:   strings.TrimSpace(info.Email),
	}, nil
}
