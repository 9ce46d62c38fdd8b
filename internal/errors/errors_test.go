package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesInvalidInput(t *testing.T) {
	err := fmt.Errorf("search: %w", NewValidationError("limit", "must be at most 50"))

	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsNotFound(err))
}

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError("page", "must be at least 1"), http.StatusBadRequest, ErrCodeInvalidInput},
		{"invalid sentinel", fmt.Errorf("bad: %w", ErrInvalidInput), http.StatusBadRequest, ErrCodeInvalidInput},
		{"property not found", NotFound("property", 7), http.StatusNotFound, ErrCodePropertyNotFound},
		{"not found", fmt.Errorf("delete: %w", NotFound("city", 3)), http.StatusNotFound, ErrCodeNotFound},
		{"unavailable", fmt.Errorf("query: %w", ErrUnavailable), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"other", stderrors.New("boom"), http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := MapError(tc.err)
			assert.Equal(t, tc.status, appErr.HTTPStatus)
			assert.Equal(t, tc.code, appErr.Code)
			assert.ErrorIs(t, appErr, tc.err)
		})
	}
}

func TestMapError_PassesThroughAppError(t *testing.T) {
	original := NewAppError("token expired", MsgUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized, nil)
	assert.Same(t, original, MapError(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, MapError(nil))
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("find: %w", NotFound("property", 7))
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "find: property 7: not found")
}
