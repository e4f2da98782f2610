package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"auth", NewAuthError("Invalid credentials.", nil), http.StatusUnauthorized},
		{"not found", NewNotFoundError("Item not found.", nil), http.StatusNotFound},
		{"validation", NewValidationError("Missing id.", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("Invalid mode.", nil), http.StatusBadRequest},
		{"database", NewDatabaseError("failed", errors.New("boom")), http.StatusInternalServerError},
		{"external", NewExternalServiceError("generation failed", nil), http.StatusBadGateway},
		{"unknown", NewAppError(UnknownError, "?", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponseHidesCause(t *testing.T) {
	err := NewDatabaseError("Failed to add item.", errors.New("pq: connection refused"))

	assert.Equal(t, ErrorResponse{Error: "Failed to add item."}, err.ToResponse())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFromErrorWrapped(t *testing.T) {
	inner := NewNotFoundError("Item not found.", nil)
	wrapped := fmt.Errorf("update item 7: %w", inner)

	got, ok := FromError(wrapped)
	assert.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, IsNotFound(wrapped))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}
