package domain

import (
	"errors"
	"fmt"
)

// Operation failures are always one of these kinds. The store stays
// valid after any failed operation; no partial mutation is observable.
var (
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrForbidden          = errors.New("admin privileges required")
	ErrUnknownItem        = errors.New("menu item not found")
	ErrUnknownOrder       = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
)

// ValidationError reports which field failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
