package engine

import "errors"

var (
	// ErrReplyTimeout is returned when a reply did not arrive within the
	// timeout set with pool.WithReplyTimeout.
	ErrReplyTimeout = errors.New("engine: reply timed out")

	// ErrMissingReply is returned when a reply channel yielded no value.
	ErrMissingReply = errors.New("engine: missing reply")
)
