package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Category errors
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryFull      = errors.New("category already has maximum 8 players")
	ErrAlreadyInCategory = errors.New("player already in category")

	// Admin errors
	ErrAdminNotFound = errors.New("admin not found")

	// Store errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotConfigured    = errors.New("storage backend is not configured")
)

// ValidationError reports a rejected input field. It is always returned
// before any store write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
