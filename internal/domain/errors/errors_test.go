package errors

import (
	"net/http"
	"testing"

	"biofit/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrFoodNotFound.WithDetails("food 42")

	assert.True(t, errors.Is(err, ErrFoodNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "food 42", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrFoodAlreadyExists.WrapMessage("create food")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FOOD_ALREADY_EXISTS", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Contains(t, err.Error(), "create food")
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create food")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
