// Package server provides the HTTP REST API for the wardrobe stylist.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrNameAlreadyExists indicates an owner name is already registered
type ErrNameAlreadyExists struct {
	Name string
}

func (e *ErrNameAlreadyExists) Error() string {
	return fmt.Sprintf("name already registered: %s", e.Name)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid name or password"
}

// ErrProfileNotFound indicates a profile was not found
type ErrProfileNotFound struct {
	ProfileID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNameAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
