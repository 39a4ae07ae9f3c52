package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("Invalid numeric id")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("User not found")))
	assert.Equal(t, KindConflict, KindOf(Conflict("Already enrolled")))
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("enroll failed: %w", NotFound("Training not found"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	var e *Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, "Training not found", e.Message)
}
