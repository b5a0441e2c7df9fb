package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesKind(t *testing.T) {
	err := Validation("amount must be positive")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrPermission)
	assert.Equal(t, "amount must be positive", err.Error())
}

func TestErrorMatchesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("recording expense: %w", Wrap(ErrConflict, cause, "insert split"))

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "recording expense: insert split: disk full", err.Error())
	assert.Equal(t, ErrConflict, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Nil(t, KindOf(errors.New("boom")))
	assert.Nil(t, KindOf(nil))
}

func TestErrorWithoutMessage(t *testing.T) {
	err := &Error{kind: ErrNotFound}
	assert.Equal(t, "not found", err.Error())
}
