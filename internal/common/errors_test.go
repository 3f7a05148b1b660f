package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := NewAppError("NO_TEXT", "document yielded insufficient text", ErrNoTextExtracted)
	assert.True(t, errors.Is(err, ErrNoTextExtracted))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "NO_TEXT: document yielded insufficient text: no meaningful text extracted", err.Error())
}

func TestAppErrorAs(t *testing.T) {
	var appErr *AppError
	err := NewAppError("NOT_FOUND", "artist not found", ErrNotFound)
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	wrapped := WrapError(ErrInternal, "loading config")
	assert.True(t, errors.Is(wrapped, ErrInternal))
}
