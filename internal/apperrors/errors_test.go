package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := NewAppError(422, "failed to save payment", fmt.Errorf("%w: bill over-allocated", ErrSubmissionRejected))

	assert.True(t, errors.Is(err, ErrSubmissionRejected))
	assert.Contains(t, err.Error(), "failed to save payment")
	assert.Contains(t, err.Error(), "bill over-allocated")
}

func TestAppError_WithoutCause(t *testing.T) {
	err := NewAppError(500, "failed to begin transaction", nil)

	assert.Equal(t, "failed to begin transaction", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
