package rop

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 3, ok.Result())
	assert.NotEqual(t, uuid.Nil, ok.Id())
	assert.False(t, ok.CreatedAt().IsZero())

	failed := Fail[int](errors.New("x"))
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())

	cancelled := Cancel[int](context.Canceled)
	assert.True(t, cancelled.IsFailure())
	assert.True(t, cancelled.IsCancel())

	var empty Result[int]
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFailure())
}

func TestResult_IdsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[uuid.UUID]bool)
	for i := range 100 {
		id := Success(i).Id()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestCancelFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Cancel[int](context.DeadlineExceeded)
	out := CancelFrom[int, string](in)

	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), context.DeadlineExceeded)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.True(t, FromError[int](context.Canceled).IsCancel())
	assert.True(t, FromError[int](context.DeadlineExceeded).IsCancel())

	plain := FromError[int](errors.New("x"))
	assert.True(t, plain.IsFailure())
	assert.False(t, plain.IsCancel())
}
