package errors

import (
	"net/http"
	"testing"

	"manna/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrMeditationNotFound.WithDetails("id=abc")

	assert.True(t, errors.Is(err, ErrMeditationNotFound))
	assert.False(t, errors.Is(err, ErrMannaNotFound))
	assert.Equal(t, "id=abc", err.Details())
	assert.Equal(t, "Meditação não encontrada.: id=abc", err.Error())
}

func TestBaseError_AsThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(ErrMannaDateConflict, "create manna")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "MANNA_DATE_CONFLICT", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := NewDatabaseExecuteError(cause, "list meditations")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "list meditations", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "deadline exceeded")
}
