package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("Should find the kind through wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", NotFound("literature not found"))
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.True(t, Is(err, KindNotFound))
	})

	t.Run("Should default to internal for foreign errors", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
		assert.False(t, Is(nil, KindInternal))
	})
}

func TestErrorIs(t *testing.T) {
	sentinel := Forbidden("not the owner")

	assert.ErrorIs(t, fmt.Errorf("update: %w", sentinel), sentinel)
	assert.NotErrorIs(t, Forbidden("something else"), sentinel)
	assert.NotErrorIs(t, NotFound("not the owner"), sentinel)
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("failed to load user", cause)

	assert.Equal(t, "failed to load user: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR", err.Kind.Code())
	assert.Equal(t, "ALREADY_EXISTS", KindAlreadyExists.Code())
}
