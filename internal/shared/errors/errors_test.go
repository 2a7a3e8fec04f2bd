package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("plan not found")
	assert.Equal(t, "not_found: plan not found", err.Error())

	withDetails := NewValidationError("invalid plan price", "amount must be a decimal")
	assert.Equal(t, "validation_error: invalid plan price (amount must be a decimal)", withDetails.Error())
}

func TestAppError_Codes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("m").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("m").Code)
	assert.Equal(t, http.StatusConflict, NewConflictError("m").Code)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("m").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("m").Code)
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("row locked")
	err := NewConflictError("cannot renew a cancelled subscription").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsConflictError(err))
}

func TestTypeCheckers_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("use case failed: %w", NewNotFoundError("subscription not found"))

	assert.True(t, IsAppError(err))
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsConflictError(err))

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
}

func TestTypeCheckers_PlainError(t *testing.T) {
	err := errors.New("connection lost")

	assert.False(t, IsAppError(err))
	assert.Nil(t, GetAppError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry 'Basic' for key 'plans.name'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: plans.name")))
	assert.False(t, IsDuplicateError(errors.New("connection lost")))
	assert.False(t, IsDuplicateError(nil))
}
