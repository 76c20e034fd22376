package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate name", &ErrNameAlreadyExists{Name: "meera"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"profile not found", &ErrProfileNotFound{ProfileID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "name", Message: "required"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()

	assert.Contains(t, (&ErrNameAlreadyExists{Name: "meera"}).Error(), "meera")
	assert.Contains(t, (&ErrProfileNotFound{ProfileID: id}).Error(), id.String())
	assert.Equal(t, "invalid name or password", (&ErrInvalidCredentials{}).Error())
}
