package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeEmpty                = "EMPTY"
	ErrCodeTooShort             = "TOO_SHORT"
	ErrCodeTooLong              = "TOO_LONG"
	ErrCodePatternMismatch      = "PATTERN_MISMATCH"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeNonPositiveAmount    = "NON_POSITIVE_AMOUNT"
	ErrCodeInvalidLineItem      = "INVALID_LINE_ITEM"
	ErrCodeAmountMismatch       = "AMOUNT_MISMATCH"
	ErrCodeMissingCurrency      = "MISSING_CURRENCY"
	ErrCodeMissingPaymentIntent = "MISSING_PAYMENT_INTENT"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeDuplicateSlug        = "DUPLICATE_SLUG"
	ErrCodeInvalidReview        = "INVALID_REVIEW"
)

var ErrInvalidTransition = &DomainError{
	Code:    ErrCodeInvalidTransition,
	Message: "invalid payment intent state transition",
}

func NewFieldError(code string, field Field, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Field:   string(field),
		Message: message,
	}
}

func NewEmptyCartError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyCart,
		Message: "at least one line item is required",
	}
}

func NewNonPositiveAmountError(amount float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNonPositiveAmount,
		Message: fmt.Sprintf("amount must be greater than zero, got %.2f", amount),
	}
}

func NewInvalidLineItemError(itemID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidLineItem,
		Message: fmt.Sprintf("line item %s has an invalid price or quantity", itemID),
	}
}

func NewAmountMismatchError(expected, claimed float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeAmountMismatch,
		Message: fmt.Sprintf("amount mismatch: items total %.2f, claimed %.2f", expected, claimed),
	}
}

func NewMissingCurrencyError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingCurrency,
		Message: "currency is required",
	}
}

func NewMissingPaymentIntentError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingPaymentIntent,
		Message: "paymentIntentId is required",
	}
}

func NewInvalidTransitionError(from, to IntentStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

func NewProductNotFoundError(slug string) *DomainError {
	return &DomainError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("product %s not found", slug),
	}
}

func NewDuplicateSlugError(slug string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateSlug,
		Message: fmt.Sprintf("product slug %s already exists", slug),
	}
}

func NewInvalidReviewError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidReview,
		Message: reason,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// FieldOf returns the offending field name if the error carries one.
func FieldOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Field
	}
	return ""
}
