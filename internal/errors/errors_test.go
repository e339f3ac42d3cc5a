package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeServiceUnavailable, http.StatusInternalServerError},
		{ErrCodeDeliveryFailed, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestNewMissingFieldsError(t *testing.T) {
	err := NewMissingFieldsError([]string{"name", "email"})

	assert.Equal(t, ErrCodeInvalidInput, err.Code)
	assert.Equal(t, []string{"name", "email"}, err.Fields)
	assert.Equal(t, "Missing required fields: name, email", err.Message)
	assert.False(t, err.Retryable)
}

func TestNewTransportUnavailableError_KeepsCause(t *testing.T) {
	cause := stderrors.New("535 bad credentials")
	err := NewTransportUnavailableError(HintAuthentication, cause)

	assert.Equal(t, ErrCodeServiceUnavailable, err.Code)
	assert.Equal(t, HintAuthentication, err.Hint)
	assert.Equal(t, "535 bad credentials", err.Details)
	assert.ErrorIs(t, err, cause)
}

func TestNormalize(t *testing.T) {
	t.Run("passes through wrapped standard errors", func(t *testing.T) {
		orig := NewDeliveryFailedError(stderrors.New("boom"))
		wrapped := fmt.Errorf("relay: %w", orig)

		got := Normalize(wrapped)
		require.NotNil(t, got)
		assert.Same(t, orig, got)
	})

	t.Run("wraps plain errors as internal", func(t *testing.T) {
		got := Normalize(stderrors.New("unexpected"))

		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, "unexpected", got.Details)
	})
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewInvalidInputError("Missing query", "blank"))

	assert.True(t, IsCode(err, ErrCodeInvalidInput))
	assert.False(t, IsCode(err, ErrCodeDeliveryFailed))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCodeInvalidInput))
}
