package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindDuplicateShowtime, "slot %s is already occupied", "room|2025-03-15|19:00")
	assert.Equal(t, KindDuplicateShowtime, KindOf(err))
	assert.Equal(t, "slot room|2025-03-15|19:00 is already occupied", err.Error())
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	inner := New(KindNotFound, "movie not found")
	wrapped := fmt.Errorf("schedule batch: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindValidation))
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
}

func TestKindOf_Nil(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("invalid UUID length")
	err := Wrap(KindValidation, cause, "invalid showtime ID format %s", "abc")

	assert.Equal(t, KindValidation, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid UUID length")
}
