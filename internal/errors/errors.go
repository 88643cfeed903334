package errors

import (
	"fmt"
	"net/http"
)

// AppError is the central interface for every typed TexStock error.
// Handlers use it to map a failure to a category and an HTTP status.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// Stable categories for business-rule violations of the slot protocol.
const (
	CategoryCapacityExceeded     = "CAPACITY_EXCEEDED"
	CategoryInsufficientQuantity = "INSUFFICIENT_QUANTITY"
	CategorySampleNotInSlot      = "SAMPLE_NOT_IN_SLOT"
)

// --- Domain error types ---

// ValidationError represents a malformed or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("validation error: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError creates a new validation error.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError represents an absent article, sample, slot or user.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("resource not found: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError creates a new not-found error.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError represents a state conflict (duplicate code, overflow slot
// already initialized).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("state conflict: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError creates a new conflict error.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// RuleError represents a violation of a slot-protocol business rule.
// The violated rule travels in the category so callers can react to it
// without parsing the message.
type RuleError struct {
	Rule string
	Msg  string
}

func (e *RuleError) Error() string    { return fmt.Sprintf("business rule violated: %s", e.Msg) }
func (e *RuleError) Category() string { return e.Rule }
func (e *RuleError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *RuleError) Unwrap() error    { return nil }

// NewCapacityExceededError signals that a stocking operation would push a
// slot past its capacity.
func NewCapacityExceededError(msg string) AppError {
	return &RuleError{Rule: CategoryCapacityExceeded, Msg: msg}
}

// NewInsufficientQuantityError signals a destock line asking for more than
// the slot holds.
func NewInsufficientQuantityError(msg string) AppError {
	return &RuleError{Rule: CategoryInsufficientQuantity, Msg: msg}
}

// NewSampleNotInSlotError signals a destock line referencing a sample the
// slot does not contain.
func NewSampleNotInSlotError(msg string) AppError {
	return &RuleError{Rule: CategorySampleNotInSlot, Msg: msg}
}

// UnauthorizedError represents a missing or invalid credential.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("unauthorized: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError creates a new unauthorized error.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError represents an authenticated caller lacking the required role.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("forbidden: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden }
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError creates a new forbidden error.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Infrastructure error types ---

// InternalError represents an unexpected server, service or repository failure.
type InternalError struct {
	Msg string
	Err error // underlying cause (e.g. SQL driver error)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("internal error: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError creates a server error wrapping the underlying cause.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError is a shortcut for an InternalError caused by the backing store.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Handler helper ---

// MapToHTTPStatus translates an error to its HTTP status, category and message.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Untyped error: treat as a generic internal failure and keep the
	// original text away from the caller.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "An unexpected error occurred."
}
