package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation would violate a
// state invariant (busy table, banned organization, duplicate active
// checkout, already-returned checkout, exhausted lock wait).
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError. Matching is by
// entity only, so sentinel conflicts compare equal regardless of the
// detail message attached at the call site.
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	if t.Entity != "" && e.Entity != t.Entity {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrTableNotFound        = &NotFoundError{Entity: "table"}
	ErrCheckoutNotFound     = &NotFoundError{Entity: "checkout"}
)

// Conflict Errors
var (
	ErrTableUnavailable          = &ConflictError{Entity: "table", Reason: "not available for checkout"}
	ErrActiveCheckoutExists      = &ConflictError{Entity: "organization", Reason: "already has an active checkout"}
	ErrOrganizationBanned        = &ConflictError{Entity: "organization", Reason: "is banned"}
	ErrOrganizationAlreadyBanned = &ConflictError{Entity: "organization", Reason: "is already banned"}
	ErrOrganizationNotBanned     = &ConflictError{Entity: "organization", Reason: "is not banned"}
	ErrCheckoutAlreadyReturned   = &ConflictError{Entity: "checkout", Reason: "already returned"}
	ErrTableHasActiveCheckout    = &ConflictError{Entity: "table", Reason: "has an active checkout"}
	ErrOrganizationExists        = &ConflictError{Entity: "organization", Reason: "with this name already exists"}
	ErrTableExists               = &ConflictError{Entity: "table", Reason: "with this number already exists"}
)

// Business Logic Errors
var (
	ErrReturnTimeInPast        = &ValidationError{Field: "expected_return_time", Message: "must be in the future"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError with a reason
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewLockTimeoutError translates a storage lock-wait timeout into a
// ConflictError inviting the caller to retry; the core never retries.
func NewLockTimeoutError(entity string) error {
	return &ConflictError{Entity: entity, Reason: "is busy, please retry"}
}
