package pool

import "errors"

var (
	ErrBadWorkerCount = errors.New("pool: worker count must be > 0")
	ErrBadWorker      = errors.New("pool: no such worker")
	ErrClosed         = errors.New("pool: queues closed")
	ErrStopped        = errors.New("pool: stopped")

	// ErrWorkerFailed wraps the error that ended a worker's loop.
	ErrWorkerFailed = errors.New("pool: worker failed")
)
