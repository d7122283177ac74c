package rop

import (
	"context"
	"errors"
)

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// FromError wraps err as a cancelled Result when it comes from a context,
// and as a failed one otherwise.
func FromError[T any](err error) Result[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}
