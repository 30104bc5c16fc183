package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedError(t *testing.T) {
	wrapped := fmt.Errorf("load dataset: %w", Clone(ErrValidation, "range is invalid"))

	appErr := FromError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrValidation.Code, appErr.Code)
	assert.Equal(t, "range is invalid", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestFromErrorWrapsUnknownAsInternal(t *testing.T) {
	appErr := FromError(assert.AnError)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, assert.AnError)
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrNotFound, "student not found")
	assert.Equal(t, "student not found", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
	assert.Nil(t, Clone(nil, "x"))
	assert.Nil(t, FromError(nil))
}
