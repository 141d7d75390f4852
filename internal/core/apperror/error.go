// Package apperror provides structured error handling for the ledger core.
// All business errors use AppError so callers can branch on machine codes.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes for the bookkeeping domain
const (
	// Malformed or out-of-range input (id ranges, negative numbers, bad dates)
	CodeValidation = "VALIDATION_ERROR"

	// Referenced product/customer does not exist
	CodeNotFound = "NOT_FOUND"

	// Duplicate id on create
	CodeConflict = "CONFLICT"

	// Forbidden mutation (direct balance edits, underpaid walk-in sales)
	CodePolicy = "POLICY_VIOLATION"

	// Container header/magic/version mismatch or unparsable payload
	CodeFormat = "FORMAT_ERROR"

	// Authentication-tag failure. The message never distinguishes a wrong
	// key from corrupted data.
	CodeCrypto = "CRYPTO_ERROR"
)

// AppError is the standard error type for the application.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field names, ids, line numbers)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewNotFound creates a not found error for a referenced entity
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewDuplicate creates a conflict error for a duplicate id on create
func NewDuplicate(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: fmt.Sprintf("duplicate %s id", entity),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewConflict creates a generic conflict error
func NewConflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewPolicy creates a policy violation error
func NewPolicy(message string) *AppError {
	return &AppError{
		Code:    CodePolicy,
		Message: message,
	}
}

// NewFormat creates a container/document format error
func NewFormat(message string) *AppError {
	return &AppError{
		Code:    CodeFormat,
		Message: message,
	}
}

// NewCrypto creates the generic cannot-open error. The message is fixed:
// it must not reveal whether the key was wrong or the data was tampered with.
func NewCrypto() *AppError {
	return &AppError{
		Code:    CodeCrypto,
		Message: "cannot open file: it may be corrupted, not an AHB Sales file, or encrypted with a different key",
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode checks if error carries the given code
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool { return HasCode(err, CodeValidation) }

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsConflict checks if error is CodeConflict
func IsConflict(err error) bool { return HasCode(err, CodeConflict) }

// IsPolicy checks if error is CodePolicy
func IsPolicy(err error) bool { return HasCode(err, CodePolicy) }

// IsFormat checks if error is CodeFormat
func IsFormat(err error) bool { return HasCode(err, CodeFormat) }

// IsCrypto checks if error is CodeCrypto
func IsCrypto(err error) bool { return HasCode(err, CodeCrypto) }
