package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("busy"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("nope"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"storage", NewStorageError("db down", nil), ErrorTypeStorage, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad input", NewValidationError("bad input").Error())
	assert.Equal(t, "validation_error: bad input (limit must be positive)",
		NewValidationError("bad input", "limit must be positive").Error())
}

func TestNewStorageError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("get entry: %w", NewStorageError("failed to read content cache", cause))

	assert.True(t, IsStorageError(wrapped))
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.False(t, IsValidationError(wrapped))
	assert.NotContains(t, GetAppError(wrapped).Details, "connection refused")
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'x' for key 'uk'")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: content_cache_entries.content_type")))
	assert.False(t, IsDuplicateError(stderrors.New("no such table")))
	assert.False(t, IsDuplicateError(nil))
}
