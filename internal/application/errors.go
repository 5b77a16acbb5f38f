package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eggypro/storefront-gateway/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodePaymentMethodDisabled  = "PAYMENT_METHOD_DISABLED"
	ErrCodeUnauthorized           = "UNAUTHORIZED"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeInternal               = "INTERNAL_ERROR"
)

// NewValidationError wraps a domain validation failure for transport.
// The domain message is user-correctable and surfaced verbatim.
func NewValidationError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewPaymentMethodDisabledError(method string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentMethodDisabled,
		Message:    fmt.Sprintf("payment method %q is not enabled in this environment", method),
		HTTPStatus: http.StatusForbidden,
	}
}

// NewUnauthorizedError never includes the expected credential.
func NewUnauthorizedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnauthorized,
		Message:    "missing or malformed authorization credential",
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewForbiddenError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeForbidden,
		Message:    "invalid authorization credential",
		HTTPStatus: http.StatusForbidden,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    err.Error(),
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps any error to its wire status code.
func ToHTTPStatus(err error) int {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps any error to its taxonomy code. Domain errors keep
// their own reason code so clients can branch without string-matching.
func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}
	return ErrCodeInternal
}
