package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError("TEST", "something failed")
	assert.Equal(t, "something failed", err.Error())

	wrapped := WrapDomainError("TEST", "something failed", errors.New("disk full"))
	assert.Equal(t, "something failed: disk full", wrapped.Error())
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	specific := NewDomainError(CodeNotFound, "Customer not found")

	assert.True(t, errors.Is(specific, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("load: %w", specific), ErrNotFound))
	assert.False(t, errors.Is(specific, ErrConflict))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapDomainError(CodeConflict, "duplicate", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestDomainError_As(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrIDMismatch)

	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, CodeIDMismatch, de.Code)
}
