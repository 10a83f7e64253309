// Package apperror defines the structured error type rendered by the API.
// Services and repositories return *AppError for every failure a client can
// act on; anything else is surfaced as an internal error.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes. The HTTP status travels separately on the
// error itself.
const (
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"
	CodeTimeout  = "TIMEOUT_ERROR"

	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidReference = "INVALID_REFERENCE"

	CodeBusinessRule     = "BUSINESS_RULE_VIOLATION"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"

	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"

	CodeNotFound = "NOT_FOUND"

	CodeConflict  = "CONFLICT"
	CodeDuplicate = "DUPLICATE_ENTRY"
)

// AppError carries the code, client-facing message and suggested HTTP status
// of a failure. Err holds the cause and never reaches the client.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches one key-value pair to the error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// NewValidation builds a 400 for malformed or inconsistent input.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound builds a 404 for a missing entity.
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidReference is returned when a request references an entity that does
// not exist (e.g. an unknown historical inventory origin). Unlike NewNotFound
// this is a request problem, surfaced as 400.
func NewInvalidReference(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeInvalidReference,
		Message:    fmt.Sprintf("referenced %s does not exist", entity),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewBusinessRule builds a 422 for a domain rule violation.
func NewBusinessRule(code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewCapacityExceeded is returned when a daily code sequence is exhausted.
// Surfaced as 500: the client did nothing wrong and retrying today cannot help.
func NewCapacityExceeded(prefix string) *AppError {
	return &AppError{
		Code:       CodeCapacityExceeded,
		Message:    "daily sequence limit reached",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"prefix": prefix},
	}
}

// NewInternal builds a 500 that hides the cause from the client.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnauthorized builds a 401.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbidden builds a 403.
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewConflict builds a 409.
func NewConflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewDuplicate builds a 409 for a unique constraint violation.
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// IsAppError reports whether the chain contains an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts the AppError from the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus maps any error to an HTTP status, defaulting to 500.
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether the error is a not-found.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsCapacityExceeded reports whether a daily sequence was exhausted.
func IsCapacityExceeded(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeCapacityExceeded
	}
	return false
}
